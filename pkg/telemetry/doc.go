// Package telemetry provides OpenTelemetry integration for distributed
// tracing and metrics. It enables observability for GraphInstance
// scheduling with support for:
//   - Distributed tracing with spans per run and per sub-graph call
//   - Prometheus metrics for step counts, executor forks/deaths, and
//     junction fires
//   - Integration with industry-standard observability platforms
package telemetry
