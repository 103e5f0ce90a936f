package log

import "time"

// Event represents a provisioning event captured at any component.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// AttemptID correlates the events of one join attempt or portal request.
	AttemptID string `cbor:"2,keyasint,omitempty"`

	// Component that emitted the event.
	Component Component `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	StateChange *StateChangeEvent `cbor:"10,keyasint,omitempty"`
	Scan        *ScanEvent        `cbor:"11,keyasint,omitempty"`
	Join        *JoinEvent        `cbor:"12,keyasint,omitempty"`
	Request     *RequestEvent     `cbor:"13,keyasint,omitempty"`
	Store       *StoreEvent       `cbor:"14,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"15,keyasint,omitempty"`
}

// Component identifies the part of the system that emitted an event.
type Component uint8

const (
	// ComponentStore is the credential store.
	ComponentStore Component = 0
	// ComponentRadio is the radio driver boundary.
	ComponentRadio Component = 1
	// ComponentManager is the connection manager.
	ComponentManager Component = 2
	// ComponentPortal is the provisioning portal.
	ComponentPortal Component = 3
)

// String returns the component name.
func (c Component) String() string {
	switch c {
	case ComponentStore:
		return "STORE"
	case ComponentRadio:
		return "RADIO"
	case ComponentManager:
		return "MANAGER"
	case ComponentPortal:
		return "PORTAL"
	default:
		return "UNKNOWN"
	}
}

// ParseComponent parses a component name as printed by String.
func ParseComponent(s string) (Component, bool) {
	for c := ComponentStore; c <= ComponentPortal; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryState indicates a state change.
	CategoryState Category = 0
	// CategoryScan indicates a network scan.
	CategoryScan Category = 1
	// CategoryJoin indicates a join attempt.
	CategoryJoin Category = 2
	// CategoryRequest indicates a portal request.
	CategoryRequest Category = 3
	// CategoryStore indicates a credential store operation.
	CategoryStore Category = 4
	// CategoryError indicates an error event.
	CategoryError Category = 5
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryState:
		return "STATE"
	case CategoryScan:
		return "SCAN"
	case CategoryJoin:
		return "JOIN"
	case CategoryRequest:
		return "REQUEST"
	case CategoryStore:
		return "STORE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name as printed by String.
func ParseCategory(s string) (Category, bool) {
	for c := CategoryState; c <= CategoryError; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// StateChangeEvent captures connection state transitions.
type StateChangeEvent struct {
	// OldState is the previous state.
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ScanEvent captures the result of a network scan.
type ScanEvent struct {
	// Visible lists the network names reported by the scan.
	Visible []string `cbor:"1,keyasint,omitempty"`

	// Elapsed is how long the scan took.
	Elapsed time.Duration `cbor:"2,keyasint"`

	// TimedOut is set when the scan never completed.
	TimedOut bool `cbor:"3,keyasint,omitempty"`
}

// JoinOutcome is the result of a single join attempt.
type JoinOutcome uint8

const (
	// JoinStarted is emitted when the join request is issued.
	JoinStarted JoinOutcome = 0
	// JoinSucceeded indicates the radio reported joined within the timeout.
	JoinSucceeded JoinOutcome = 1
	// JoinTimedOut indicates the timeout elapsed without a join.
	JoinTimedOut JoinOutcome = 2
	// JoinSkipped indicates the candidate was not visible in the scan.
	JoinSkipped JoinOutcome = 3
	// JoinFailed indicates the radio rejected the join request.
	JoinFailed JoinOutcome = 4
)

// String returns the outcome name.
func (o JoinOutcome) String() string {
	switch o {
	case JoinStarted:
		return "STARTED"
	case JoinSucceeded:
		return "SUCCEEDED"
	case JoinTimedOut:
		return "TIMED_OUT"
	case JoinSkipped:
		return "SKIPPED"
	case JoinFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// JoinEvent captures one join attempt.
type JoinEvent struct {
	// Network is the network name (never the secret).
	Network string `cbor:"1,keyasint"`

	// Slot is the credential slot index, or -1 for a manually entered credential.
	Slot int `cbor:"2,keyasint"`

	// Outcome of the attempt.
	Outcome JoinOutcome `cbor:"3,keyasint"`

	// Elapsed is the time since the join request was issued.
	Elapsed time.Duration `cbor:"4,keyasint,omitempty"`

	// Timeout is the per-attempt timeout in effect.
	Timeout time.Duration `cbor:"5,keyasint,omitempty"`
}

// RequestEvent captures a portal HTTP request.
type RequestEvent struct {
	// Method is the HTTP method.
	Method string `cbor:"1,keyasint"`

	// Path is the request path (no query string, which may carry a secret).
	Path string `cbor:"2,keyasint"`

	// Status is the response status code.
	Status int `cbor:"3,keyasint"`

	// RemoteAddr is the client address.
	RemoteAddr string `cbor:"4,keyasint,omitempty"`
}

// StoreOp identifies a credential store operation.
type StoreOp uint8

const (
	// StoreOpAppend records an appended credential.
	StoreOpAppend StoreOp = 0
	// StoreOpWipe records a full wipe.
	StoreOpWipe StoreOp = 1
	// StoreOpReset records a corruption reset on load.
	StoreOpReset StoreOp = 2
	// StoreOpRejected records an append rejected because the store is full.
	StoreOpRejected StoreOp = 3
)

// String returns the operation name.
func (o StoreOp) String() string {
	switch o {
	case StoreOpAppend:
		return "APPEND"
	case StoreOpWipe:
		return "WIPE"
	case StoreOpReset:
		return "RESET"
	case StoreOpRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// StoreEvent captures a credential store operation.
type StoreEvent struct {
	// Op is the operation performed.
	Op StoreOp `cbor:"1,keyasint"`

	// Slot is the affected slot index (append only).
	Slot int `cbor:"2,keyasint,omitempty"`

	// Network is the appended network name (append only).
	Network string `cbor:"3,keyasint,omitempty"`

	// Count is the credential count after the operation.
	Count int `cbor:"4,keyasint"`

	// RawCount is the corrupt count byte found on load (reset only).
	RawCount int `cbor:"5,keyasint,omitempty"`
}

// ErrorEventData captures errors at any component.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
