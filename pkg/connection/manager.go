package connection

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/wifi-custodian/custodian-go/pkg/credential"
	"github.com/wifi-custodian/custodian-go/pkg/log"
	"github.com/wifi-custodian/custodian-go/pkg/radio"
)

// portalStopTimeout bounds Portal.Stop during teardown.
const portalStopTimeout = 5 * time.Second

// Portal is the provisioning web interface started while the fallback AP
// is up.
type Portal interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Manager drives the radio through the connection state machine.
type Manager struct {
	mu sync.RWMutex

	// Current state
	state State

	// Per-attempt join timeout, snapshotted when a join starts
	timeout time.Duration

	// Manual join bookkeeping
	pending      credential.Credential
	hasPending   bool
	attempt      AttemptState
	manualJoined bool
	saveErr      error

	// Closed by CompleteProvisioning while provisioning
	ready       chan struct{}
	readyClosed bool

	// Context manual attempts run under
	attemptCtx context.Context

	portal Portal

	// Callbacks
	onStateChange func(oldState, newState State)

	// joinMu serializes scans and joins.
	joinMu sync.Mutex

	drv    radio.Driver
	store  *credential.Store
	config Config
	logger *slog.Logger
	events log.Logger
}

// NewManager creates a manager for drv backed by store.
func NewManager(drv radio.Driver, store *credential.Store, cfg Config) *Manager {
	cfg = cfg.withDefaults()
	return &Manager{
		state:      StateDisconnected,
		timeout:    cfg.JoinTimeout,
		attemptCtx: context.Background(),
		drv:        drv,
		store:      store,
		config:     cfg,
		logger:     cfg.Logger,
		events:     log.OrNoop(cfg.EventLogger),
	}
}

// State returns the current connection state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Store returns the credential store the manager iterates.
func (m *Manager) Store() *credential.Store {
	return m.store
}

// SetPortal sets the portal started during provisioning.
func (m *Manager) SetPortal(p Portal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.portal = p
}

// OnStateChange sets a callback for state transitions.
func (m *Manager) OnStateChange(fn func(oldState, newState State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onStateChange = fn
}

// SetTimeout sets the per-join timeout in seconds for subsequent attempts.
// Values below one are treated as one second.
func (m *Manager) SetTimeout(seconds int) {
	if seconds < 1 {
		seconds = 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = time.Duration(seconds) * time.Second
}

// Timeout returns the per-join timeout.
func (m *Manager) Timeout() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.timeout
}

// SetPending sets the credential used by ConnectWithSave.
func (m *Manager) SetPending(c credential.Credential) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = c
	m.hasPending = true
}

// Pending returns the pending credential, if any.
func (m *Manager) Pending() (credential.Credential, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pending, m.hasPending
}

// EnsureConnected joins a stored network, or provisions a new one through
// the portal. It returns true once the radio is joined. Exhausting the
// stored networks is not an error; the call blocks in provisioning until
// CompleteProvisioning or ctx cancellation.
func (m *Manager) EnsureConnected(ctx context.Context) (bool, error) {
	if m.drv.Joined() {
		m.setState(StateConnected, "already joined")
		return true, nil
	}

	joined, err := m.joinStored(ctx)
	if err != nil {
		return false, err
	}
	if joined {
		return true, nil
	}

	return m.provision(ctx)
}

// joinStored tries each stored credential in slot order.
func (m *Manager) joinStored(ctx context.Context) (bool, error) {
	m.joinMu.Lock()
	defer m.joinMu.Unlock()

	count := m.store.Count()
	if count == 0 {
		m.info("no stored networks")
		return false, nil
	}

	visible, err := m.scan(ctx)
	if err != nil {
		return false, err
	}

	for i := 0; i < count; i++ {
		c, err := m.store.Load(i)
		if err != nil {
			return false, fmt.Errorf("load slot %d: %w", i, err)
		}

		if !visible[c.Name] {
			m.debug("stored network not visible", "slot", i, "network", c.Name)
			m.emitJoin("", log.JoinEvent{Network: c.Name, Slot: i, Outcome: log.JoinSkipped})
			continue
		}

		ok, err := m.join(ctx, c, i)
		if err != nil {
			return false, err
		}
		if ok {
			m.setState(StateConnected, "joined "+c.Name)
			return true, nil
		}
	}

	m.info("stored networks exhausted", "count", count)
	return false, nil
}

// provision brings up the AP and portal and waits for the ready signal.
func (m *Manager) provision(ctx context.Context) (bool, error) {
	m.mu.Lock()
	m.ready = make(chan struct{})
	m.readyClosed = false
	m.manualJoined = false
	m.attempt = AttemptIdle
	m.saveErr = nil
	m.attemptCtx = ctx
	ready := m.ready
	portal := m.portal
	m.mu.Unlock()

	m.setState(StateProvisioningActive, "no known network reachable")

	ip, err := m.drv.StartAccessPoint(m.config.AccessPointSSID, m.config.AccessPointPassphrase)
	if err != nil {
		m.endProvisioning()
		m.setState(StateDisconnected, "access point failed")
		return false, fmt.Errorf("start access point: %w", err)
	}
	m.info("access point up", "ssid", m.config.AccessPointSSID, "ip", ip.String())

	if portal != nil {
		if err := portal.Start(ctx); err != nil {
			_ = m.drv.StopAccessPoint()
			m.endProvisioning()
			m.setState(StateDisconnected, "portal failed")
			return false, fmt.Errorf("start portal: %w", err)
		}
	}

	select {
	case <-ready:
	case <-ctx.Done():
		m.teardown(portal)
		m.endProvisioning()
		m.setState(StateDisconnected, "shutdown")
		return false, ctx.Err()
	}

	m.teardown(portal)
	m.endProvisioning()
	m.setState(StateConnected, "provisioning complete")
	return true, nil
}

// endProvisioning detaches manual attempts from the provisioning context.
func (m *Manager) endProvisioning() {
	m.mu.Lock()
	m.attemptCtx = context.Background()
	m.mu.Unlock()
}

// teardown stops the portal, then the AP.
func (m *Manager) teardown(portal Portal) {
	if portal != nil {
		ctx, cancel := context.WithTimeout(context.Background(), portalStopTimeout)
		if err := portal.Stop(ctx); err != nil {
			m.warn("portal stop failed", "error", err)
		}
		cancel()
	}
	if err := m.drv.StopAccessPoint(); err != nil {
		m.warn("access point stop failed", "error", err)
	}
	m.info("access point down")
}

// CompleteProvisioning releases EnsureConnected from provisioning. It
// returns ErrNotConnected unless a manual join has succeeded. Repeated
// calls are harmless.
func (m *Manager) CompleteProvisioning() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.manualJoined {
		return ErrNotConnected
	}
	if m.ready != nil && !m.readyClosed {
		close(m.ready)
		m.readyClosed = true
	}
	return nil
}

// setState transitions to newState and notifies observers.
func (m *Manager) setState(newState State, reason string) {
	m.mu.Lock()
	oldState := m.state
	if oldState == newState {
		m.mu.Unlock()
		return
	}
	m.state = newState
	cb := m.onStateChange
	m.mu.Unlock()

	m.info("state change", "from", oldState.String(), "to", newState.String(), "reason", reason)

	e := log.NewEvent(log.ComponentManager, log.CategoryState)
	e.StateChange = &log.StateChangeEvent{
		OldState: oldState.String(),
		NewState: newState.String(),
		Reason:   reason,
	}
	m.events.Log(e)

	if cb != nil {
		cb(oldState, newState)
	}
}

func (m *Manager) debug(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, args...)
	}
}

func (m *Manager) info(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Info(msg, args...)
	}
}

func (m *Manager) warn(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Warn(msg, args...)
	}
}
