package connection

import (
	"errors"

	"github.com/wifi-custodian/custodian-go/pkg/credential"
)

// BeginManualAttempt records c as the pending credential and joins it on
// a new goroutine, saving it on success. Only one attempt runs at a time.
func (m *Manager) BeginManualAttempt(c credential.Credential) error {
	if err := c.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	switch m.attempt {
	case AttemptPending:
		m.mu.Unlock()
		return ErrAttemptInProgress
	case AttemptSucceeded:
		m.mu.Unlock()
		return ErrManualJoined
	}
	m.pending = c
	m.hasPending = true
	m.attempt = AttemptPending
	m.saveErr = nil
	ctx := m.attemptCtx
	m.mu.Unlock()

	go func() {
		joined, err := m.ConnectWithSave(ctx, true)

		m.mu.Lock()
		if joined {
			m.attempt = AttemptSucceeded
		} else {
			m.attempt = AttemptFailed
		}
		m.mu.Unlock()

		switch {
		case joined && err != nil:
			m.warn("manual join succeeded without save", "network", c.Name, "error", err)
		case joined:
			m.info("manual join succeeded", "network", c.Name)
		case err != nil:
			m.warn("manual join failed", "network", c.Name, "error", err)
		default:
			m.info("manual join failed", "network", c.Name)
		}
	}()
	return nil
}

// ManualAttempt returns the state of the manual join.
func (m *Manager) ManualAttempt() AttemptState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.attempt
}

// ResetManualAttempt clears a failed attempt so a new one can start.
func (m *Manager) ResetManualAttempt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.attempt == AttemptFailed {
		m.attempt = AttemptIdle
	}
}

// ManualSaveError returns the error from saving the last manually joined
// credential, or nil.
func (m *Manager) ManualSaveError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saveErr
}

// StoreFull reports whether the last manual save was rejected because
// every slot is occupied.
func (m *Manager) StoreFull() bool {
	return errors.Is(m.ManualSaveError(), credential.ErrStoreFull)
}
