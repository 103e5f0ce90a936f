package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes provisioning events to an slog.Logger.
// Useful during development to see the trace on the console.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates a SlogAdapter that writes at Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of the adapter that logs at level.
func (a *SlogAdapter) WithLevel(level slog.Level) *SlogAdapter {
	return &SlogAdapter{logger: a.logger, level: level}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("component", event.Component.String()),
		slog.String("category", event.Category.String()),
	}
	if event.AttemptID != "" {
		attrs = append(attrs, slog.String("attempt_id", event.AttemptID))
	}

	switch {
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Scan != nil:
		attrs = append(attrs,
			slog.Int("visible", len(event.Scan.Visible)),
			slog.Duration("elapsed", event.Scan.Elapsed),
		)
		if event.Scan.TimedOut {
			attrs = append(attrs, slog.Bool("timed_out", true))
		}
	case event.Join != nil:
		attrs = append(attrs,
			slog.String("network", event.Join.Network),
			slog.Int("slot", event.Join.Slot),
			slog.String("outcome", event.Join.Outcome.String()),
		)
		if event.Join.Elapsed > 0 {
			attrs = append(attrs, slog.Duration("elapsed", event.Join.Elapsed))
		}
	case event.Request != nil:
		attrs = append(attrs,
			slog.String("method", event.Request.Method),
			slog.String("path", event.Request.Path),
			slog.Int("status", event.Request.Status),
		)
	case event.Store != nil:
		attrs = append(attrs,
			slog.String("op", event.Store.Op.String()),
			slog.Int("count", event.Store.Count),
		)
		if event.Store.Network != "" {
			attrs = append(attrs,
				slog.String("network", event.Store.Network),
				slog.Int("slot", event.Store.Slot),
			)
		}
		if event.Store.Op == StoreOpReset {
			attrs = append(attrs, slog.Int("raw_count", event.Store.RawCount))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), a.level, "event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
