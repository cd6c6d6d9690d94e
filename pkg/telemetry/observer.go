package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dgraph-esolang/directed/pkg/observer"
)

// TelemetryObserver implements observer.Observer and records telemetry
// data for GraphInstance scheduling events.
type TelemetryObserver struct {
	provider *Provider

	// Track the active span for the run and for each sub-graph, by graph name
	runSpan    trace.Span
	graphSpans map[string]trace.Span

	// Track execution times
	runStartTime   time.Time
	graphStartTime map[string]time.Time
}

// NewTelemetryObserver creates a new telemetry observer
func NewTelemetryObserver(provider *Provider) *TelemetryObserver {
	return &TelemetryObserver{
		provider:       provider,
		graphSpans:     make(map[string]trace.Span),
		graphStartTime: make(map[string]time.Time),
	}
}

// OnEvent handles scheduling events and records telemetry data
func (o *TelemetryObserver) OnEvent(ctx context.Context, event observer.Event) {
	switch event.Type {
	case observer.EventRunStart:
		o.handleRunStart(ctx, event)
	case observer.EventRunEnd:
		o.handleRunEnd(ctx, event)
	case observer.EventExecutorFork:
		o.provider.RecordExecutorFork(ctx, event.GraphName, 1)
	case observer.EventExecutorDie:
		o.provider.RecordExecutorDeath(ctx, event.GraphName, 1)
	case observer.EventJunctionFire:
		o.provider.RecordJunctionFire(ctx, event.GraphName, event.NodeID)
	case observer.EventSubgraphEnter:
		o.handleSubgraphEnter(ctx, event)
	case observer.EventSubgraphExit:
		o.handleSubgraphExit(ctx, event)
	}
}

func (o *TelemetryObserver) handleRunStart(ctx context.Context, event observer.Event) {
	_, span := o.provider.Tracer().Start(ctx, "graph.run",
		trace.WithAttributes(
			attribute.String("graph.name", event.GraphName),
			attribute.String("run.id", event.RunID),
		),
	)

	o.runSpan = span
	o.runStartTime = event.Timestamp
}

func (o *TelemetryObserver) handleRunEnd(ctx context.Context, event observer.Event) {
	duration := time.Since(o.runStartTime)

	steps := event.Step

	returned := event.Status == observer.StatusReturned
	o.provider.RecordRun(ctx, event.GraphName, duration, returned, steps)

	if o.runSpan != nil {
		if event.Error != nil {
			o.runSpan.RecordError(event.Error)
			o.runSpan.SetStatus(codes.Error, event.Error.Error())
		} else {
			o.runSpan.SetStatus(codes.Ok, "run completed")
		}
		o.runSpan.End()
	}
}

func (o *TelemetryObserver) handleSubgraphEnter(ctx context.Context, event observer.Event) {
	var spanCtx context.Context
	if o.runSpan != nil {
		spanCtx = trace.ContextWithSpan(ctx, o.runSpan)
	} else {
		spanCtx = ctx
	}

	_, span := o.provider.Tracer().Start(spanCtx, "graph.subgraph",
		trace.WithAttributes(
			attribute.String("graph.name", event.GraphName),
			attribute.Int("node.id", event.NodeID),
			attribute.Int("depth", event.Depth),
		),
	)

	o.graphSpans[event.GraphName] = span
	o.graphStartTime[event.GraphName] = event.Timestamp

	o.provider.RecordSubgraphCall(ctx, "", event.GraphName)
}

func (o *TelemetryObserver) handleSubgraphExit(ctx context.Context, event observer.Event) {
	if span, ok := o.graphSpans[event.GraphName]; ok {
		if event.Error != nil {
			span.RecordError(event.Error)
			span.SetStatus(codes.Error, event.Error.Error())
		} else {
			span.SetStatus(codes.Ok, "subgraph completed")
		}
		span.End()
		delete(o.graphSpans, event.GraphName)
		delete(o.graphStartTime, event.GraphName)
	}
}
