package engine

import "errors"

var (
	// ErrMaxStepsExceeded is returned when a run's step count exceeds the
	// configured operator safety valve (config.Config.MaxSteps).
	ErrMaxStepsExceeded = errors.New("scheduler exceeded configured maximum steps")

	// ErrMaxExecutorsExceeded is returned when the live executor count
	// exceeds config.Config.MaxExecutors at the end of a step.
	ErrMaxExecutorsExceeded = errors.New("scheduler exceeded configured maximum live executors")

	// ErrMaxGraphDepthExceeded is returned when sub-graph nesting exceeds
	// config.Config.MaxGraphDepth.
	ErrMaxGraphDepthExceeded = errors.New("sub-graph nesting exceeded configured maximum depth")
)
