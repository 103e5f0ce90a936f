package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/wifi-custodian/custodian-go/pkg/credential"
	"github.com/wifi-custodian/custodian-go/pkg/log"
)

// manualSlot marks join events for a credential that is not stored.
const manualSlot = -1

// scan runs one scan and returns the visible network names.
func (m *Manager) scan(ctx context.Context) (map[string]bool, error) {
	attemptID := log.NewAttemptID()
	start := time.Now()

	if err := m.drv.StartScan(); err != nil {
		return nil, fmt.Errorf("start scan: %w", err)
	}

	ticker := time.NewTicker(m.config.ScanPollInterval)
	defer ticker.Stop()
	deadline := time.NewTimer(m.config.ScanTimeout)
	defer deadline.Stop()

	for {
		if names, done := m.drv.ScanResults(); done {
			visible := make(map[string]bool, len(names))
			for _, n := range names {
				visible[n] = true
			}
			m.debug("scan complete", "visible", len(names), "elapsed", time.Since(start))
			m.emitScan(attemptID, log.ScanEvent{Visible: names, Elapsed: time.Since(start)})
			return visible, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			m.warn("scan timed out", "timeout", m.config.ScanTimeout)
			m.emitScan(attemptID, log.ScanEvent{Elapsed: time.Since(start), TimedOut: true})
			return nil, ErrScanTimeout
		case <-ticker.C:
		}
	}
}

// join requests association with c and polls until joined or the
// timeout in effect at the start of the attempt elapses. A timed-out
// join is disconnected. Only ctx cancellation is returned as an error.
func (m *Manager) join(ctx context.Context, c credential.Credential, slot int) (bool, error) {
	timeout := m.Timeout()
	attemptID := log.NewAttemptID()
	start := time.Now()

	m.info("joining network", "network", c.Name, "slot", slot, "timeout", timeout)
	m.emitJoin(attemptID, log.JoinEvent{Network: c.Name, Slot: slot, Outcome: log.JoinStarted, Timeout: timeout})

	if err := m.drv.Join(c.Name, c.Secret); err != nil {
		m.warn("join request rejected", "network", c.Name, "error", err)
		m.emitJoin(attemptID, log.JoinEvent{Network: c.Name, Slot: slot, Outcome: log.JoinFailed, Elapsed: time.Since(start), Timeout: timeout})
		m.disconnect()
		return false, nil
	}

	ticker := time.NewTicker(m.config.JoinPollInterval)
	defer ticker.Stop()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		if m.drv.Joined() {
			m.info("joined network", "network", c.Name, "elapsed", time.Since(start))
			m.emitJoin(attemptID, log.JoinEvent{Network: c.Name, Slot: slot, Outcome: log.JoinSucceeded, Elapsed: time.Since(start), Timeout: timeout})
			return true, nil
		}

		select {
		case <-ctx.Done():
			m.disconnect()
			return false, ctx.Err()
		case <-deadline.C:
			m.info("join timed out", "network", c.Name, "timeout", timeout)
			m.emitJoin(attemptID, log.JoinEvent{Network: c.Name, Slot: slot, Outcome: log.JoinTimedOut, Elapsed: time.Since(start), Timeout: timeout})
			m.disconnect()
			return false, nil
		case <-ticker.C:
		}
	}
}

func (m *Manager) disconnect() {
	if err := m.drv.Disconnect(); err != nil {
		m.warn("disconnect failed", "error", err)
	}
}

// ConnectWithSave scans and joins the pending credential. On success the
// manual join is recorded for CompleteProvisioning and, if save is set,
// the credential is appended to the store. A failed save does not undo
// the join: the result is true together with the wrapped store error.
func (m *Manager) ConnectWithSave(ctx context.Context, save bool) (bool, error) {
	c, ok := m.Pending()
	if !ok {
		return false, ErrNoPendingCredential
	}

	joined, err := m.joinPending(ctx, c)
	if err != nil || !joined {
		return false, err
	}

	// The credential is committed before the portal may confirm the join.
	var saveErr error
	if save {
		if _, saveErr = m.store.Append(c); saveErr != nil {
			m.warn("credential not saved", "network", c.Name, "error", saveErr)
		}
	}

	m.mu.Lock()
	if save {
		m.saveErr = saveErr
	}
	m.manualJoined = true
	provisioning := m.state == StateProvisioningActive
	m.mu.Unlock()

	if !provisioning {
		m.setState(StateConnected, "joined "+c.Name)
	}

	if saveErr != nil {
		return true, fmt.Errorf("save credential: %w", saveErr)
	}
	return true, nil
}

func (m *Manager) joinPending(ctx context.Context, c credential.Credential) (bool, error) {
	m.joinMu.Lock()
	defer m.joinMu.Unlock()

	visible, err := m.scan(ctx)
	if err != nil {
		return false, err
	}
	if !visible[c.Name] {
		m.info("network not visible", "network", c.Name)
		m.emitJoin("", log.JoinEvent{Network: c.Name, Slot: manualSlot, Outcome: log.JoinSkipped})
		return false, nil
	}
	return m.join(ctx, c, manualSlot)
}

func (m *Manager) emitScan(attemptID string, ev log.ScanEvent) {
	e := log.NewEvent(log.ComponentRadio, log.CategoryScan)
	e.AttemptID = attemptID
	e.Scan = &ev
	m.events.Log(e)
}

func (m *Manager) emitJoin(attemptID string, ev log.JoinEvent) {
	e := log.NewEvent(log.ComponentRadio, log.CategoryJoin)
	e.AttemptID = attemptID
	e.Join = &ev
	m.events.Log(e)
}
