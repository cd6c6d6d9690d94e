package observer

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// NoOpObserver discards every event. It gives callers an explicit Observer
// value when they want "no observer" to be a real registered instance
// rather than a special nil case threaded through GraphInstance.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}

// structuredLevel says which Logger method a StructuredObserver calls for
// each EventType, absent an error on the event (an error always escalates
// to Error regardless of this table).
var structuredLevel = map[EventType]string{
	EventRunStart: "info",
	EventRunEnd:   "info",
}

// StructuredObserver renders every event as one structured log line through
// a Logger. It's the general-purpose fallback for a host that wants a
// textual audit trail of scheduling events without adopting the exact
// debug-mode line format DebugLineObserver produces.
type StructuredObserver struct {
	logger Logger
}

// NewStructuredObserver builds a StructuredObserver writing through a
// DefaultLogger.
func NewStructuredObserver() *StructuredObserver {
	return &StructuredObserver{logger: NewDefaultLogger()}
}

// NewStructuredObserverWithLogger builds a StructuredObserver writing
// through a caller-supplied Logger.
func NewStructuredObserverWithLogger(l Logger) *StructuredObserver {
	return &StructuredObserver{logger: l}
}

func (o *StructuredObserver) OnEvent(ctx context.Context, event Event) {
	fields := map[string]interface{}{
		"run_id":     event.RunID,
		"graph_name": event.GraphName,
		"status":     event.Status,
	}
	if event.Step > 0 {
		fields["step"] = event.Step
	}
	if event.NodeID != 0 || event.ExecutorID != 0 {
		fields["node_id"] = event.NodeID
		fields["executor_id"] = event.ExecutorID
	}
	if event.ElapsedTime > 0 {
		fields["elapsed_time"] = event.ElapsedTime.String()
	}

	msg := string(event.Type)

	if event.Error != nil {
		fields["error"] = event.Error.Error()
		o.logger.Error(msg, fields)
		return
	}
	if structuredLevel[event.Type] == "info" {
		o.logger.Info(msg, fields)
		return
	}
	o.logger.Debug(msg, fields)
}

// DebugLineObserver renders the exact debug-mode trace a Directed host
// prints when tracing is enabled: one "executor <id> @ <node-label> :
// <accumulator>" record per executor advanced, a bare "---" between
// scheduler steps, and "=== <graph-name> ===" whenever a sub-graph is
// entered. Register it synchronously (GraphInstance uses NotifySync for the
// events it reacts to) so the trace comes out in scheduler order.
//
// With no graph names given it renders every graph; otherwise it renders
// only the named graphs, matching config.Config.DebugGraphs.
type DebugLineObserver struct {
	out  io.Writer
	only map[string]struct{}

	mu      sync.Mutex
	started bool
}

// NewDebugLineObserver builds a DebugLineObserver writing to out, optionally
// restricted to the given graph names.
func NewDebugLineObserver(out io.Writer, graphs ...string) *DebugLineObserver {
	d := &DebugLineObserver{out: out}
	if len(graphs) > 0 {
		d.only = make(map[string]struct{}, len(graphs))
		for _, g := range graphs {
			d.only[g] = struct{}{}
		}
	}
	return d
}

func (d *DebugLineObserver) wants(graphName string) bool {
	if d.only == nil {
		return true
	}
	_, ok := d.only[graphName]
	return ok
}

func (d *DebugLineObserver) OnEvent(ctx context.Context, event Event) {
	if !d.wants(event.GraphName) {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch event.Type {
	case EventStepStart:
		if d.started {
			fmt.Fprintln(d.out, "---")
		}
		d.started = true
	case EventExecutorMove:
		fmt.Fprintf(d.out, "executor %d @ %s : %s\n", event.ExecutorID, event.NodeLabel, event.Value.String())
	case EventSubgraphEnter:
		fmt.Fprintf(d.out, "=== %s ===\n", event.GraphName)
	}
}
