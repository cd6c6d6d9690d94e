package observer

import (
	"log"
	"os"
)

// NoOpLogger discards every message. It satisfies Logger for callers that
// want a StructuredObserver without any output at all.
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, fields map[string]interface{}) {}
func (NoOpLogger) Info(msg string, fields map[string]interface{})  {}
func (NoOpLogger) Warn(msg string, fields map[string]interface{})  {}
func (NoOpLogger) Error(msg string, fields map[string]interface{}) {}

// DefaultLogger is a minimal Logger built directly on the standard
// library's log package: info/debug/warn go to stdout, error to stderr.
// It exists so StructuredObserver has somewhere to write without forcing
// every caller to plumb in a pkg/logging.Logger.
type DefaultLogger struct {
	out *log.Logger
	err *log.Logger
}

// NewDefaultLogger builds a DefaultLogger writing to stdout/stderr with
// standard timestamp flags.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		out: log.New(os.Stdout, "", log.LstdFlags),
		err: log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *DefaultLogger) Debug(msg string, fields map[string]interface{}) {
	l.out.Printf("DEBUG %s %v", msg, fields)
}

func (l *DefaultLogger) Info(msg string, fields map[string]interface{}) {
	l.out.Printf("INFO  %s %v", msg, fields)
}

func (l *DefaultLogger) Warn(msg string, fields map[string]interface{}) {
	l.out.Printf("WARN  %s %v", msg, fields)
}

func (l *DefaultLogger) Error(msg string, fields map[string]interface{}) {
	l.err.Printf("ERROR %s %v", msg, fields)
}
