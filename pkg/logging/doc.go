// Package logging provides structured logging capabilities for the
// graph-execution engine.
//
// # Overview
//
// The logging package implements a structured logging system with support
// for multiple output formats, log levels, and contextual information tied
// to the engine's execution lifecycle: which graph, which node, which step.
//
// # Features
//
//   - Structured logging: JSON and text formats
//   - Log levels: DEBUG, INFO, WARN, ERROR
//   - Context propagation: graph name, node ID, step
//   - Performance: minimal overhead for disabled log levels
//   - Thread-safe: safe for concurrent use
//   - Flexible output: write to any io.Writer
//
// # Basic Usage
//
//	import "github.com/dgraph-esolang/directed/pkg/logging"
//
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Output: os.Stdout,
//	})
//
//	logger.WithGraphName("Main").WithStep(3).Info("executor died")
//
// # Output Formats
//
// JSON format (default):
//
//	{"time":"2024-01-15T10:30:00.000Z","level":"INFO","msg":"executor died","graph_name":"Main","step":3}
//
// Text format (Pretty: true, used in development):
//
//	time=2024-01-15T10:30:00.000Z level=INFO msg="executor died" graph_name=Main step=3
//
// # Integration with Observability
//
// The logging package complements, rather than replaces, the observer
// package: observer notifies interested listeners of scheduler events;
// logging is how GraphInstance itself records what happened for operators
// debugging a run.
//
// # Thread Safety
//
// All logger operations are thread-safe and can be used concurrently from
// multiple goroutines without additional synchronization.
package logging
