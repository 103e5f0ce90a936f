package log

import "sync"

// Recorder keeps events in memory. It backs the status console and is
// convenient in tests that assert on the trace.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Log appends the event.
func (r *Recorder) Log(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Filter returns the recorded events matching f.
func (r *Recorder) Filter(f Filter) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Event
	for _, e := range r.events {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Compile-time interface satisfaction check.
var _ Logger = (*Recorder)(nil)
