package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Service name for telemetry
	serviceName = "directed-engine"

	// Metric names
	metricRunExecutions  = "run.executions.total"
	metricRunDuration    = "run.execution.duration"
	metricRunReturned    = "run.executions.returned.total"
	metricRunDied        = "run.executions.died.total"
	metricStepCount      = "step.count.total"
	metricExecutorsAlive = "executor.alive"
	metricExecutorForks  = "executor.forks.total"
	metricExecutorDied   = "executor.died.total"
	metricJunctionFires  = "junction.fires.total"
	metricSubgraphCalls  = "subgraph.calls.total"
)

// Provider manages OpenTelemetry setup and provides access to tracers and
// meters for instrumenting GraphInstance scheduling.
type Provider struct {
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider trace.TracerProvider
	meter          metric.Meter
	tracer         trace.Tracer

	// Metrics instruments
	runExecutions  metric.Int64Counter
	runDuration    metric.Float64Histogram
	runReturned    metric.Int64Counter
	runDied        metric.Int64Counter
	stepCount      metric.Int64Counter
	executorsAlive metric.Int64UpDownCounter
	executorForks  metric.Int64Counter
	executorDied   metric.Int64Counter
	junctionFires  metric.Int64Counter
	subgraphCalls  metric.Int64Counter

	mu sync.RWMutex
}

// Config holds telemetry configuration
type Config struct {
	// ServiceName is the name of the service for telemetry
	ServiceName string

	// ServiceVersion is the version of the service
	ServiceVersion string

	// Environment (e.g., "production", "staging", "development")
	Environment string

	// EnableTracing enables distributed tracing
	EnableTracing bool

	// EnableMetrics enables metrics collection
	EnableMetrics bool
}

// DefaultConfig returns default telemetry configuration
func DefaultConfig() Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: "0.1.0",
		Environment:    "development",
		EnableTracing:  true,
		EnableMetrics:  true,
	}
}

// NewProvider creates a new telemetry provider with a Prometheus metrics
// exporter. It initializes OpenTelemetry with the given configuration and
// returns a provider that can be used to create tracers and record metrics.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	provider := &Provider{}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if config.EnableMetrics {
		if err := provider.initMetrics(res); err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
	}

	if config.EnableTracing {
		provider.initTracing()
	}

	return provider, nil
}

// initMetrics initializes the metrics provider with Prometheus exporter
func (p *Provider) initMetrics(res *resource.Resource) error {
	exporter, err := prometheus.New()
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)

	otel.SetMeterProvider(p.meterProvider)

	p.meter = p.meterProvider.Meter(serviceName)

	if err := p.createMetricInstruments(); err != nil {
		return fmt.Errorf("failed to create metric instruments: %w", err)
	}

	return nil
}

// initTracing initializes the tracing provider
func (p *Provider) initTracing() {
	// In production this should be configured with an explicit exporter
	// (OTLP, etc.); the global provider is sufficient to exercise spans.
	p.tracerProvider = otel.GetTracerProvider()
	p.tracer = p.tracerProvider.Tracer(serviceName)
}

// createMetricInstruments creates all metric instruments
func (p *Provider) createMetricInstruments() error {
	var err error

	p.runExecutions, err = p.meter.Int64Counter(
		metricRunExecutions,
		metric.WithDescription("Total number of GraphInstance runs started"),
	)
	if err != nil {
		return err
	}

	p.runDuration, err = p.meter.Float64Histogram(
		metricRunDuration,
		metric.WithDescription("GraphInstance run duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	p.runReturned, err = p.meter.Int64Counter(
		metricRunReturned,
		metric.WithDescription("Total number of runs that terminated via RETURN"),
	)
	if err != nil {
		return err
	}

	p.runDied, err = p.meter.Int64Counter(
		metricRunDied,
		metric.WithDescription("Total number of runs that terminated with no return value"),
	)
	if err != nil {
		return err
	}

	p.stepCount, err = p.meter.Int64Counter(
		metricStepCount,
		metric.WithDescription("Total number of scheduler steps executed"),
	)
	if err != nil {
		return err
	}

	p.executorsAlive, err = p.meter.Int64UpDownCounter(
		metricExecutorsAlive,
		metric.WithDescription("Number of executors currently alive"),
	)
	if err != nil {
		return err
	}

	p.executorForks, err = p.meter.Int64Counter(
		metricExecutorForks,
		metric.WithDescription("Total number of executor forks at branching nodes"),
	)
	if err != nil {
		return err
	}

	p.executorDied, err = p.meter.Int64Counter(
		metricExecutorDied,
		metric.WithDescription("Total number of executors that died (DIE or DIE_ALL)"),
	)
	if err != nil {
		return err
	}

	p.junctionFires, err = p.meter.Int64Counter(
		metricJunctionFires,
		metric.WithDescription("Total number of junction nodes that fired"),
	)
	if err != nil {
		return err
	}

	p.subgraphCalls, err = p.meter.Int64Counter(
		metricSubgraphCalls,
		metric.WithDescription("Total number of sub-graph invocations"),
	)
	if err != nil {
		return err
	}

	return nil
}

// Tracer returns the tracer for creating spans
func (p *Provider) Tracer() trace.Tracer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tracer
}

// Meter returns the meter for recording metrics
func (p *Provider) Meter() metric.Meter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.meter
}

// RecordRun records metrics for one GraphInstance run's lifetime.
func (p *Provider) RecordRun(ctx context.Context, graphName string, duration time.Duration, returned bool, steps int) {
	if p.meter == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("graph.name", graphName),
	}

	p.runExecutions.Add(ctx, 1, metric.WithAttributes(attrs...))
	p.runDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	p.stepCount.Add(ctx, int64(steps), metric.WithAttributes(attrs...))

	if returned {
		p.runReturned.Add(ctx, 1, metric.WithAttributes(attrs...))
	} else {
		p.runDied.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordExecutorFork records an executor forking into n children at a
// branching node.
func (p *Provider) RecordExecutorFork(ctx context.Context, graphName string, n int) {
	if p.meter == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("graph.name", graphName))
	p.executorForks.Add(ctx, int64(n), attrs)
	p.executorsAlive.Add(ctx, int64(n), attrs)
}

// RecordExecutorDeath records one or more executors leaving the alive set.
func (p *Provider) RecordExecutorDeath(ctx context.Context, graphName string, n int) {
	if p.meter == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("graph.name", graphName))
	p.executorDied.Add(ctx, int64(n), attrs)
	p.executorsAlive.Add(ctx, -int64(n), attrs)
}

// RecordJunctionFire records a junction node firing after synchronizing
// its incoming slots.
func (p *Provider) RecordJunctionFire(ctx context.Context, graphName string, nodeID int) {
	if p.meter == nil {
		return
	}
	p.junctionFires.Add(ctx, 1, metric.WithAttributes(
		attribute.String("graph.name", graphName),
		attribute.Int("node.id", nodeID),
	))
}

// RecordSubgraphCall records a GraphNode variant invoking a nested
// sub-graph to completion.
func (p *Provider) RecordSubgraphCall(ctx context.Context, parentGraph, subgraphName string) {
	if p.meter == nil {
		return
	}
	p.subgraphCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("graph.name", parentGraph),
		attribute.String("subgraph.name", subgraphName),
	))
}

// Shutdown gracefully shuts down the telemetry provider
func (p *Provider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown meter provider: %w", err)
		}
	}

	return nil
}
