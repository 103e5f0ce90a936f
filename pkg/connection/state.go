package connection

import "errors"

// Connection errors.
var (
	ErrScanTimeout         = errors.New("network scan timed out")
	ErrNoPendingCredential = errors.New("no pending credential")
	ErrAttemptInProgress   = errors.New("manual join already in progress")
	ErrManualJoined        = errors.New("manual join already succeeded")
	ErrNotConnected        = errors.New("not connected")
)

// State represents the connection state.
type State uint8

const (
	// StateDisconnected indicates no network is joined and no portal runs.
	StateDisconnected State = iota

	// StateConnected indicates the radio is joined to a network.
	StateConnected

	// StateProvisioningActive indicates the fallback AP and portal are up.
	StateProvisioningActive
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateConnected:
		return "CONNECTED"
	case StateProvisioningActive:
		return "PROVISIONING_ACTIVE"
	default:
		return "UNKNOWN"
	}
}

// AttemptState tracks the single in-flight manual join.
type AttemptState uint8

const (
	// AttemptIdle indicates no manual join has been requested.
	AttemptIdle AttemptState = iota

	// AttemptPending indicates a manual join is running.
	AttemptPending

	// AttemptFailed indicates the last manual join did not complete.
	AttemptFailed

	// AttemptSucceeded indicates a manual join completed.
	AttemptSucceeded
)

// String returns a human-readable attempt state name.
func (a AttemptState) String() string {
	switch a {
	case AttemptIdle:
		return "IDLE"
	case AttemptPending:
		return "PENDING"
	case AttemptFailed:
		return "FAILED"
	case AttemptSucceeded:
		return "SUCCEEDED"
	default:
		return "UNKNOWN"
	}
}
