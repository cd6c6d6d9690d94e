// Package observer provides an event-driven observer pattern for
// graph-execution monitoring.
//
// # Overview
//
// The observer package lets callers watch a GraphInstance's scheduling
// behavior — run start/end, each step start, executor moves, forks and
// deaths, junction fires, and sub-graph enter/exit — without coupling to
// the engine's internals. EventStepEnd, EventExecutorReturn and
// EventJunctionFill are defined here but not emitted by GraphInstance.
//
// # Features
//
//   - Event-driven: react to run, step, executor, and junction events
//   - Multiple observers: register any number simultaneously via Manager
//   - Asynchronous delivery: Manager.Notify dispatches to each observer in
//     its own goroutine and recovers from observer panics, so a broken
//     observer can never affect the scheduler it's watching
//   - Concurrent emission: Notify and NotifySync may be called from several
//     goroutines at once
//
// # Basic Usage
//
//	import "github.com/dgraph-esolang/directed/pkg/observer"
//
//	inst := engine.New(g).RegisterObserver(observer.NewStructuredObserver())
//
// A standalone Manager fans events out the same way:
//
//	mgr := observer.NewManager()
//	mgr.Register(observer.NewStructuredObserver())
//	mgr.Notify(ctx, event)
//
// # Default Implementations
//
// NoOpObserver discards every event; a GraphInstance with no registered
// observer delivers to an empty Manager instead. StructuredObserver renders events through a
// Logger (NoOpLogger or DefaultLogger, or any caller-supplied
// implementation). DebugLineObserver renders the engine's debug-mode line
// format instead of structured log lines, and is registered automatically
// whenever a Config names graphs to trace.
//
// # Thread Safety
//
// The default Observer/Logger implementations are safe for concurrent use.
// Manager's Notify, NotifySync, HasObservers and Count only read its
// observer list and may run concurrently; Register is not synchronized with
// them. Manager.Notify dispatches asynchronously, one goroutine
// per observer; Manager.NotifySync delivers in order on the calling
// goroutine for events (step boundaries, executor moves) whose sequencing
// is part of the contract.
package observer
