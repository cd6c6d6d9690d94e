// Package observer provides the Observer pattern implementation for
// graph-execution monitoring. This allows library consumers to track and
// monitor a GraphInstance's scheduling behavior without modifying the
// scheduler itself.
package observer

import (
	"context"
	"time"

	"github.com/dgraph-esolang/directed/pkg/bignum"
)

// EventType represents the type of scheduling event.
type EventType string

const (
	// Run-level events: one GraphInstance's entire life.
	EventRunStart EventType = "run_start"
	EventRunEnd   EventType = "run_end"

	// Step-level events: one pass of the scheduler loop.
	EventStepStart EventType = "step_start"
	EventStepEnd   EventType = "step_end"

	// Executor-level events.
	EventExecutorMove   EventType = "executor_move"
	EventExecutorFork   EventType = "executor_fork"
	EventExecutorDie    EventType = "executor_die"
	EventExecutorReturn EventType = "executor_return"

	// Junction-level events.
	EventJunctionFill EventType = "junction_fill"
	EventJunctionFire EventType = "junction_fire"

	// Sub-graph invocation events.
	EventSubgraphEnter EventType = "subgraph_enter"
	EventSubgraphExit  EventType = "subgraph_exit"
)

// Status represents the outcome of a run, step, or executor transition.
type Status string

const (
	StatusStarted   Status = "started"
	StatusValue     Status = "value"
	StatusReturned  Status = "returned"
	StatusDied      Status = "died"
	StatusDiedAll   Status = "died_all"
	StatusCompleted Status = "completed"
)

// Event represents an execution event with all relevant metadata.
type Event struct {
	// Event identification
	Type      EventType `json:"type"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`

	// Execution context
	RunID     string `json:"run_id"`
	GraphName string `json:"graph_name"`
	Depth     int    `json:"depth,omitempty"`

	// Scheduler context (run_end carries only Step, the run's step count;
	// run_start leaves these empty)
	Step       int    `json:"step,omitempty"`
	NodeID     int    `json:"node_id,omitempty"`
	NodeLabel  string `json:"node_label,omitempty"`
	ExecutorID int    `json:"executor_id,omitempty"`

	// Timing information
	StartTime   time.Time     `json:"start_time,omitempty"`
	ElapsedTime time.Duration `json:"elapsed_time,omitempty"`

	// Execution results
	Value bignum.Integer `json:"value,omitempty"`
	Error error          `json:"error,omitempty"`

	// Additional metadata
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Observer defines the interface for graph execution observers. Observers
// receive notifications about various stages of GraphInstance scheduling.
type Observer interface {
	// OnEvent is called when a scheduling event occurs. The context can be
	// used for cancellation and passing request-scoped values.
	OnEvent(ctx context.Context, event Event)
}

// Logger defines the interface for custom logging. This allows library
// consumers to integrate with their own logging systems.
type Logger interface {
	// Debug logs debug-level messages
	Debug(msg string, fields map[string]interface{})

	// Info logs info-level messages
	Info(msg string, fields map[string]interface{})

	// Warn logs warning-level messages
	Warn(msg string, fields map[string]interface{})

	// Error logs error-level messages
	Error(msg string, fields map[string]interface{})
}
