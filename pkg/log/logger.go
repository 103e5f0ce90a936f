package log

import (
	"time"

	"github.com/google/uuid"
)

// Logger is the interface applications implement to receive provisioning events.
// Pass nil or NoopLogger to disable logging.
type Logger interface {
	// Log records an event. Implementations must be thread-safe.
	Log(event Event)
}

// NoopLogger discards all events. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// OrNoop returns l, or NoopLogger if l is nil.
func OrNoop(l Logger) Logger {
	if l == nil {
		return NoopLogger{}
	}
	return l
}

// NewAttemptID returns a fresh identifier for correlating the events of a
// single join attempt or portal request.
func NewAttemptID() string {
	return uuid.New().String()
}

// NewEvent returns an event stamped with the current time.
func NewEvent(component Component, category Category) Event {
	return Event{
		Timestamp: time.Now(),
		Component: component,
		Category:  category,
	}
}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
