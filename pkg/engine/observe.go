package engine

import (
	"context"
	"time"

	"github.com/dgraph-esolang/directed/pkg/observer"
	"github.com/dgraph-esolang/directed/pkg/types"
)

func (gi *GraphInstance) notifyRunStart(ctx context.Context) {
	gi.logger.Debug("run started")
	if !gi.observers.HasObservers() {
		return
	}
	gi.observers.Notify(ctx, observer.Event{
		Type:      observer.EventRunStart,
		Status:    observer.StatusStarted,
		Timestamp: time.Now(),
		RunID:     gi.runID,
		GraphName: gi.graph.Name,
		Depth:     gi.depth,
	})
}

func (gi *GraphInstance) notifyRunEnd(ctx context.Context, start time.Time, outcome types.Outcome, err error) {
	status := observer.StatusDied
	if err == nil && outcome.Kind == types.Value {
		status = observer.StatusReturned
	}

	logger := gi.logger.WithField("steps", gi.stepCount).WithField("status", string(status))
	if err != nil {
		logger.WithError(err).Error("run ended")
	} else {
		logger.Info("run ended")
	}

	if gi.telemetry != nil {
		gi.telemetry.RecordRun(ctx, gi.graph.Name, time.Since(start), status == observer.StatusReturned, gi.stepCount)
	}

	if !gi.observers.HasObservers() {
		return
	}
	gi.observers.Notify(ctx, observer.Event{
		Type:        observer.EventRunEnd,
		Status:      status,
		Timestamp:   time.Now(),
		RunID:       gi.runID,
		GraphName:   gi.graph.Name,
		Depth:       gi.depth,
		StartTime:   start,
		ElapsedTime: time.Since(start),
		Step:        gi.stepCount,
		Value:       outcome.Value,
		Error:       err,
	})
}

func (gi *GraphInstance) notifyStepStart(ctx context.Context) {
	if !gi.observers.HasObservers() {
		return
	}
	gi.observers.NotifySync(ctx, observer.Event{
		Type:      observer.EventStepStart,
		Status:    observer.StatusStarted,
		Timestamp: time.Now(),
		RunID:     gi.runID,
		GraphName: gi.graph.Name,
		Depth:     gi.depth,
		Step:      gi.stepCount,
	})
}

// notifyExecutorMove reports one executor landing on a node, carrying the
// accumulator it arrived with. This is the per-step record the debug-mode
// line format is built from, so it is delivered via NotifySync: a debug
// renderer needs these in the order the scheduler produced them, not
// reordered by Manager.Notify's async fan-out.
func (gi *GraphInstance) notifyExecutorMove(ctx context.Context, exec *Executor) {
	if !gi.observers.HasObservers() {
		return
	}
	gi.observers.NotifySync(ctx, observer.Event{
		Type:       observer.EventExecutorMove,
		Status:     observer.StatusValue,
		Timestamp:  time.Now(),
		RunID:      gi.runID,
		GraphName:  gi.graph.Name,
		Depth:      gi.depth,
		Step:       gi.stepCount,
		NodeID:     exec.current,
		NodeLabel:  gi.graph.Nodes[exec.current].Name,
		ExecutorID: exec.id,
		Value:      exec.accumulator,
	})
}

func (gi *GraphInstance) notifyExecutorFork(ctx context.Context, n int) {
	if !gi.observers.HasObservers() {
		return
	}
	gi.observers.Notify(ctx, observer.Event{
		Type:      observer.EventExecutorFork,
		Status:    observer.StatusStarted,
		Timestamp: time.Now(),
		RunID:     gi.runID,
		GraphName: gi.graph.Name,
		Step:      gi.stepCount,
		Metadata:  map[string]interface{}{"forks": n},
	})
}

func (gi *GraphInstance) notifyExecutorDeath(ctx context.Context, n int) {
	if !gi.observers.HasObservers() {
		return
	}
	gi.observers.Notify(ctx, observer.Event{
		Type:      observer.EventExecutorDie,
		Status:    observer.StatusDied,
		Timestamp: time.Now(),
		RunID:     gi.runID,
		GraphName: gi.graph.Name,
		Step:      gi.stepCount,
		Metadata:  map[string]interface{}{"count": n},
	})
}

func (gi *GraphInstance) notifyJunctionFire(nodeIdx int) {
	gi.logger.WithNodeID(nodeIdx).WithStep(gi.stepCount).Debug("junction fired")
	if !gi.observers.HasObservers() {
		return
	}
	gi.observers.Notify(context.Background(), observer.Event{
		Type:      observer.EventJunctionFire,
		Status:    observer.StatusCompleted,
		Timestamp: time.Now(),
		RunID:     gi.runID,
		GraphName: gi.graph.Name,
		Step:      gi.stepCount,
		NodeID:    nodeIdx,
	})
}

// notifySubgraphEnter is delivered via NotifySync, like notifyStepStart and
// notifyExecutorMove: its "=== <graph-name> ===" debug line must land at the
// point in the trace where the sub-graph was actually entered, not wherever
// an async dispatch happens to land.
func (gi *GraphInstance) notifySubgraphEnter(ctx context.Context, name string) {
	gi.logger.Debug("entering sub-graph " + name)
	if !gi.observers.HasObservers() {
		return
	}
	gi.observers.NotifySync(ctx, observer.Event{
		Type:      observer.EventSubgraphEnter,
		Status:    observer.StatusStarted,
		Timestamp: time.Now(),
		RunID:     gi.runID,
		GraphName: name,
		Depth:     gi.depth + 1,
	})
}

func (gi *GraphInstance) notifySubgraphExit(ctx context.Context, name string) {
	if !gi.observers.HasObservers() {
		return
	}
	gi.observers.Notify(ctx, observer.Event{
		Type:      observer.EventSubgraphExit,
		Status:    observer.StatusCompleted,
		Timestamp: time.Now(),
		RunID:     gi.runID,
		GraphName: name,
		Depth:     gi.depth + 1,
	})
}
