package config

import "errors"

// Sentinel errors for configuration validation.
var (
	ErrInvalidMaxSteps      = errors.New("invalid max steps: must be non-negative")
	ErrInvalidMaxExecutors  = errors.New("invalid max executors: must be non-negative")
	ErrInvalidStepTimeout   = errors.New("invalid step timeout: must be non-negative")
	ErrInvalidRunTimeout    = errors.New("invalid run timeout: must be non-negative")
	ErrInvalidMaxGraphDepth = errors.New("invalid max graph depth: must be non-negative")
	ErrInvalidLogLevel      = errors.New("invalid log level")
	ErrInvalidLogFormat     = errors.New("invalid log format")
)
