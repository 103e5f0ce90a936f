package connection

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wifi-custodian/custodian-go/pkg/bytestore"
	"github.com/wifi-custodian/custodian-go/pkg/credential"
	"github.com/wifi-custodian/custodian-go/pkg/log"
	"github.com/wifi-custodian/custodian-go/pkg/radio"
	"github.com/wifi-custodian/custodian-go/pkg/radio/mocks"
)

type fakePortal struct {
	mu      sync.Mutex
	starts  int
	stops   int
	started chan struct{}
}

func newFakePortal() *fakePortal {
	return &fakePortal{started: make(chan struct{}, 1)}
}

func (p *fakePortal) Start(context.Context) error {
	p.mu.Lock()
	p.starts++
	p.mu.Unlock()
	select {
	case p.started <- struct{}{}:
	default:
	}
	return nil
}

func (p *fakePortal) Stop(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stops++
	return nil
}

func (p *fakePortal) counts() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.starts, p.stops
}

func (p *fakePortal) waitStarted(t *testing.T) {
	t.Helper()
	select {
	case <-p.started:
	case <-time.After(5 * time.Second):
		t.Fatal("portal was not started")
	}
}

type ensureResult struct {
	ok  bool
	err error
}

func runEnsure(ctx context.Context, m *Manager) <-chan ensureResult {
	done := make(chan ensureResult, 1)
	go func() {
		ok, err := m.EnsureConnected(ctx)
		done <- ensureResult{ok: ok, err: err}
	}()
	return done
}

func newTestStore(t *testing.T, creds ...credential.Credential) *credential.Store {
	t.Helper()
	store, err := credential.Open(bytestore.NewMemoryStore(credential.LayoutSize), credential.StoreConfig{})
	require.NoError(t, err)
	for _, c := range creds {
		_, err := store.Append(c)
		require.NoError(t, err)
	}
	return store
}

func fastConfig() Config {
	return Config{
		JoinTimeout:      50 * time.Millisecond,
		JoinPollInterval: 5 * time.Millisecond,
		ScanTimeout:      time.Second,
		ScanPollInterval: 5 * time.Millisecond,
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "DISCONNECTED", StateDisconnected.String())
	assert.Equal(t, "CONNECTED", StateConnected.String())
	assert.Equal(t, "PROVISIONING_ACTIVE", StateProvisioningActive.String())
	assert.Equal(t, "UNKNOWN", State(99).String())
	assert.Equal(t, "PENDING", AttemptPending.String())
}

func TestNewManagerDefaults(t *testing.T) {
	m := NewManager(radio.NewSimulator(radio.SimulatorConfig{}), newTestStore(t), Config{})

	assert.Equal(t, StateDisconnected, m.State())
	assert.Equal(t, DefaultJoinTimeout, m.Timeout())
	assert.Equal(t, DefaultAccessPointSSID, m.config.AccessPointSSID)
	assert.Equal(t, AttemptIdle, m.ManualAttempt())
}

func TestSetTimeout(t *testing.T) {
	m := NewManager(radio.NewSimulator(radio.SimulatorConfig{}), newTestStore(t), Config{})

	m.SetTimeout(3)
	assert.Equal(t, 3*time.Second, m.Timeout())

	m.SetTimeout(0)
	assert.Equal(t, time.Second, m.Timeout())
}

func TestEnsureConnectedAlreadyJoined(t *testing.T) {
	drv := mocks.NewMockDriver(t)
	drv.EXPECT().Joined().Return(true).Once()

	bs := bytestore.NewMemoryStore(credential.LayoutSize)
	store, err := credential.Open(bs, credential.StoreConfig{})
	require.NoError(t, err)

	m := NewManager(drv, store, fastConfig())
	ok, err := m.EnsureConnected(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StateConnected, m.State())
	assert.Zero(t, bs.Commits())
}

func TestEnsureConnectedStoredNetworks(t *testing.T) {
	t.Run("HomeOffice", func(t *testing.T) {
		sim := radio.NewSimulator(radio.SimulatorConfig{})
		sim.AddNetwork("office", "pw2")
		store := newTestStore(t,
			credential.Credential{Name: "home", Secret: "pw"},
			credential.Credential{Name: "office", Secret: "pw2"},
		)

		m := NewManager(sim, store, fastConfig())
		ok, err := m.EnsureConnected(context.Background())

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, StateConnected, m.State())
		assert.Equal(t, []string{"office"}, sim.JoinCalls(), "invisible home must be skipped")
		assert.Equal(t, "office", sim.ConnectedNetwork())
	})

	t.Run("StopsAtFirstSuccess", func(t *testing.T) {
		sim := radio.NewSimulator(radio.SimulatorConfig{})
		sim.AddNetwork("a", "1")
		sim.AddNetwork("b", "2")
		sim.AddNetwork("c", "3")
		store := newTestStore(t,
			credential.Credential{Name: "a", Secret: "1"},
			credential.Credential{Name: "b", Secret: "2"},
			credential.Credential{Name: "c", Secret: "3"},
		)

		m := NewManager(sim, store, fastConfig())
		ok, err := m.EnsureConnected(context.Background())

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"a"}, sim.JoinCalls())
	})

	t.Run("StoredOrderAfterTimeout", func(t *testing.T) {
		sim := radio.NewSimulator(radio.SimulatorConfig{})
		sim.AddNetwork("b", "2")
		sim.AddNetwork("a", "1")
		store := newTestStore(t,
			credential.Credential{Name: "a", Secret: "wrong"},
			credential.Credential{Name: "b", Secret: "2"},
		)

		m := NewManager(sim, store, fastConfig())
		ok, err := m.EnsureConnected(context.Background())

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, sim.JoinCalls())
		assert.Equal(t, "b", sim.ConnectedNetwork())
	})
}

func TestEnsureConnectedJoinTimeoutDisconnects(t *testing.T) {
	drv := mocks.NewMockDriver(t)
	drv.EXPECT().Joined().Return(false)
	drv.EXPECT().StartScan().Return(nil).Once()
	drv.EXPECT().ScanResults().Return([]string{"a"}, true).Once()
	drv.EXPECT().Join("a", "x").Return(nil).Once()
	drv.EXPECT().Disconnect().Return(nil).Once()
	drv.EXPECT().StartAccessPoint(DefaultAccessPointSSID, "").Return(net.IPv4(192, 168, 4, 1), nil).Once()
	drv.EXPECT().StopAccessPoint().Return(nil).Once()

	rec := log.NewRecorder()
	cfg := fastConfig()
	cfg.EventLogger = rec
	m := NewManager(drv, newTestStore(t, credential.Credential{Name: "a", Secret: "x"}), cfg)
	portal := newFakePortal()
	m.SetPortal(portal)

	ctx, cancel := context.WithCancel(context.Background())
	done := runEnsure(ctx, m)
	portal.waitStarted(t)
	cancel()

	res := <-done
	assert.False(t, res.ok)
	assert.ErrorIs(t, res.err, context.Canceled)

	joinCat := log.CategoryJoin
	var outcomes []log.JoinOutcome
	for _, e := range rec.Filter(log.Filter{Category: &joinCat}) {
		outcomes = append(outcomes, e.Join.Outcome)
	}
	assert.Equal(t, []log.JoinOutcome{log.JoinStarted, log.JoinTimedOut}, outcomes)
}

func TestEnsureConnectedScanTimeout(t *testing.T) {
	drv := mocks.NewMockDriver(t)
	drv.EXPECT().Joined().Return(false).Once()
	drv.EXPECT().StartScan().Return(nil).Once()
	drv.EXPECT().ScanResults().Return(nil, false)

	cfg := fastConfig()
	cfg.ScanTimeout = 30 * time.Millisecond
	m := NewManager(drv, newTestStore(t, credential.Credential{Name: "home", Secret: "pw"}), cfg)

	ok, err := m.EnsureConnected(context.Background())

	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrScanTimeout)
	assert.Equal(t, StateDisconnected, m.State())
}

func TestEnsureConnectedEmptyStoreSkipsScan(t *testing.T) {
	drv := mocks.NewMockDriver(t)
	drv.EXPECT().Joined().Return(false).Once()
	drv.EXPECT().StartAccessPoint(DefaultAccessPointSSID, "").Return(net.IPv4(192, 168, 4, 1), nil).Once()
	drv.EXPECT().StopAccessPoint().Return(nil).Once()

	m := NewManager(drv, newTestStore(t), fastConfig())
	portal := newFakePortal()
	m.SetPortal(portal)

	var transitions []string
	var mu sync.Mutex
	m.OnStateChange(func(oldState, newState State) {
		mu.Lock()
		defer mu.Unlock()
		transitions = append(transitions, fmt.Sprintf("%s->%s", oldState, newState))
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := runEnsure(ctx, m)
	portal.waitStarted(t)
	assert.Equal(t, StateProvisioningActive, m.State())
	cancel()

	res := <-done
	assert.ErrorIs(t, res.err, context.Canceled)
	starts, stops := portal.counts()
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, stops)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"DISCONNECTED->PROVISIONING_ACTIVE",
		"PROVISIONING_ACTIVE->DISCONNECTED",
	}, transitions)
}

func TestEnsureConnectedTimeoutAbandonment(t *testing.T) {
	sim := radio.NewSimulator(radio.SimulatorConfig{})
	sim.AddNetwork("home", "pw")
	store := newTestStore(t, credential.Credential{Name: "home", Secret: "wrong"})

	cfg := fastConfig()
	cfg.JoinPollInterval = 10 * time.Millisecond
	m := NewManager(sim, store, cfg)
	m.SetTimeout(1)
	portal := newFakePortal()
	m.SetPortal(portal)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Now()
	done := runEnsure(ctx, m)
	portal.waitStarted(t)
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, time.Second)
	assert.Less(t, elapsed, 2*time.Second)
	assert.Equal(t, []string{"home"}, sim.JoinCalls())
	assert.True(t, sim.AccessPointActive())

	cancel()
	<-done
}

func TestProvisioningBlocksUntilComplete(t *testing.T) {
	sim := radio.NewSimulator(radio.SimulatorConfig{})
	sim.AddNetwork("home", "pw")
	store := newTestStore(t)

	m := NewManager(sim, store, fastConfig())
	portal := newFakePortal()
	m.SetPortal(portal)

	done := runEnsure(context.Background(), m)
	portal.waitStarted(t)

	assert.True(t, sim.AccessPointActive())
	assert.Equal(t, "espThing", sim.AccessPointSSID())
	assert.ErrorIs(t, m.CompleteProvisioning(), ErrNotConnected)

	require.NoError(t, m.BeginManualAttempt(credential.Credential{Name: "home", Secret: "pw"}))
	assert.Eventually(t, func() bool {
		return m.ManualAttempt() == AttemptSucceeded
	}, 2*time.Second, 5*time.Millisecond)

	select {
	case <-done:
		t.Fatal("EnsureConnected returned before CompleteProvisioning")
	case <-time.After(50 * time.Millisecond):
	}
	assert.True(t, sim.AccessPointActive(), "AP must stay up until ready")
	assert.Equal(t, StateProvisioningActive, m.State())

	require.NoError(t, m.CompleteProvisioning())
	require.NoError(t, m.CompleteProvisioning())

	res := <-done
	require.NoError(t, res.err)
	assert.True(t, res.ok)
	assert.Equal(t, StateConnected, m.State())
	assert.False(t, sim.AccessPointActive())
	assert.Equal(t, 1, store.Count())

	c, err := store.Load(0)
	require.NoError(t, err)
	assert.Equal(t, credential.Credential{Name: "home", Secret: "pw"}, c)
}

func TestManualAttempt(t *testing.T) {
	t.Run("SingleFlight", func(t *testing.T) {
		sim := radio.NewSimulator(radio.SimulatorConfig{JoinDelay: 100 * time.Millisecond})
		sim.AddNetwork("home", "pw")
		m := NewManager(sim, newTestStore(t), fastConfig())
		m.SetTimeout(2)

		c := credential.Credential{Name: "home", Secret: "pw"}
		require.NoError(t, m.BeginManualAttempt(c))
		assert.ErrorIs(t, m.BeginManualAttempt(c), ErrAttemptInProgress)

		assert.Eventually(t, func() bool {
			return m.ManualAttempt() == AttemptSucceeded
		}, 2*time.Second, 5*time.Millisecond)
		assert.Equal(t, []string{"home"}, sim.JoinCalls())
		assert.ErrorIs(t, m.BeginManualAttempt(c), ErrManualJoined)
		assert.Equal(t, StateConnected, m.State())
	})

	t.Run("FailedThenReset", func(t *testing.T) {
		sim := radio.NewSimulator(radio.SimulatorConfig{})
		sim.AddNetwork("home", "pw")
		m := NewManager(sim, newTestStore(t), fastConfig())

		require.NoError(t, m.BeginManualAttempt(credential.Credential{Name: "home", Secret: "nope"}))
		assert.Eventually(t, func() bool {
			return m.ManualAttempt() == AttemptFailed
		}, 2*time.Second, 5*time.Millisecond)
		assert.ErrorIs(t, m.CompleteProvisioning(), ErrNotConnected)

		m.ResetManualAttempt()
		assert.Equal(t, AttemptIdle, m.ManualAttempt())
		assert.Zero(t, m.Store().Count())
	})

	t.Run("AfterCancelledProvisioning", func(t *testing.T) {
		sim := radio.NewSimulator(radio.SimulatorConfig{})
		sim.AddNetwork("home", "pw")
		m := NewManager(sim, newTestStore(t), fastConfig())
		portal := newFakePortal()
		m.SetPortal(portal)

		ctx, cancel := context.WithCancel(context.Background())
		done := runEnsure(ctx, m)
		portal.waitStarted(t)
		cancel()
		res := <-done
		require.ErrorIs(t, res.err, context.Canceled)

		require.NoError(t, m.BeginManualAttempt(credential.Credential{Name: "home", Secret: "pw"}))
		assert.Eventually(t, func() bool {
			return m.ManualAttempt() == AttemptSucceeded
		}, 2*time.Second, 5*time.Millisecond)
		assert.Equal(t, "home", sim.ConnectedNetwork())
		assert.Equal(t, 1, m.Store().Count())
	})

	t.Run("InvalidCredential", func(t *testing.T) {
		m := NewManager(radio.NewSimulator(radio.SimulatorConfig{}), newTestStore(t), fastConfig())

		assert.ErrorIs(t, m.BeginManualAttempt(credential.Credential{}), credential.ErrEmptyName)
		assert.Equal(t, AttemptIdle, m.ManualAttempt())
	})
}

func TestConnectWithSave(t *testing.T) {
	t.Run("NoPending", func(t *testing.T) {
		m := NewManager(radio.NewSimulator(radio.SimulatorConfig{}), newTestStore(t), fastConfig())

		ok, err := m.ConnectWithSave(context.Background(), true)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrNoPendingCredential)
	})

	t.Run("WithoutSave", func(t *testing.T) {
		sim := radio.NewSimulator(radio.SimulatorConfig{})
		sim.AddNetwork("home", "pw")
		m := NewManager(sim, newTestStore(t), fastConfig())
		m.SetPending(credential.Credential{Name: "home", Secret: "pw"})

		ok, err := m.ConnectWithSave(context.Background(), false)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Zero(t, m.Store().Count())
		assert.NoError(t, m.CompleteProvisioning())
	})

	t.Run("NotVisible", func(t *testing.T) {
		sim := radio.NewSimulator(radio.SimulatorConfig{})
		m := NewManager(sim, newTestStore(t), fastConfig())
		m.SetPending(credential.Credential{Name: "ghost", Secret: "pw"})

		ok, err := m.ConnectWithSave(context.Background(), true)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, sim.JoinCalls())
	})

	t.Run("SavedBeforeConfirm", func(t *testing.T) {
		sim := radio.NewSimulator(radio.SimulatorConfig{})
		sim.AddNetwork("home", "pw")
		store := newTestStore(t)
		m := NewManager(sim, store, fastConfig())
		m.SetPending(credential.Credential{Name: "home", Secret: "pw"})

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = m.ConnectWithSave(context.Background(), true)
		}()

		require.Eventually(t, func() bool {
			return m.CompleteProvisioning() == nil
		}, 2*time.Second, time.Millisecond)
		assert.Equal(t, 1, store.Count(), "credential committed before the join is confirmed")
		<-done
	})

	t.Run("StoreFull", func(t *testing.T) {
		var creds []credential.Credential
		for i := 0; i < credential.MaxSlots; i++ {
			creds = append(creds, credential.Credential{Name: fmt.Sprintf("net%d", i), Secret: "pw"})
		}
		store := newTestStore(t, creds...)

		sim := radio.NewSimulator(radio.SimulatorConfig{})
		sim.AddNetwork("extra", "pw")
		m := NewManager(sim, store, fastConfig())
		m.SetPending(credential.Credential{Name: "extra", Secret: "pw"})

		ok, err := m.ConnectWithSave(context.Background(), true)
		assert.True(t, ok, "connection stands when the save fails")
		assert.ErrorIs(t, err, credential.ErrStoreFull)
		assert.True(t, m.StoreFull())
		assert.Equal(t, credential.MaxSlots, store.Count())
		assert.Equal(t, "extra", sim.ConnectedNetwork())
	})
}
