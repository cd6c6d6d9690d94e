// Package config provides configuration management for the graph-execution
// engine.
//
// # Overview
//
// The language itself defines no timeouts or resource caps — it leaves a
// non-terminating program running forever, relying on the host to enforce
// wall-clock limits externally. This package is that host-side policy
// layer: step/executor/depth caps an operator can opt into, plus the
// engine's ambient logging and telemetry settings.
//
// # Basic Usage
//
//	import "github.com/dgraph-esolang/directed/pkg/config"
//
//	cfg := config.Default()
//	inst := engine.New(g).WithConfig(cfg)
//
// # Presets
//
// Default returns an unrestricted config suitable for a single trusted
// run. Production bounds steps, executors, and sub-graph depth against a
// runaway or adversarial program. Development turns on debug logging and
// telemetry. Testing applies tight bounds so a runaway graph fails a unit
// test fast instead of hanging it.
//
// # Thread Safety
//
// Configuration objects are safe for concurrent read access; mutate only
// a Clone.
package config
