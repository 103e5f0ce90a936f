package radio

import (
	"crypto/subtle"
	"errors"
	"net"
	"sync"
	"time"
)

// ErrAccessPointUp is returned when the simulated AP is started twice.
var ErrAccessPointUp = errors.New("access point already active")

// DefaultAccessPointIP is the address the simulated AP reports, matching
// the soft-AP default of common microcontroller radios.
var DefaultAccessPointIP = net.IPv4(192, 168, 4, 1)

// SimulatorConfig configures a Simulator.
type SimulatorConfig struct {
	// ScanDelay is how long a scan takes to complete.
	ScanDelay time.Duration

	// JoinDelay is how long a join with a correct secret takes.
	JoinDelay time.Duration
}

// Simulator is an in-memory radio. A join completes JoinDelay after the
// request if the network is visible and the secret matches; a wrong secret
// or an invisible network never completes.
type Simulator struct {
	mu sync.Mutex

	config SimulatorConfig
	now    func() time.Time

	// networks holds visible networks in the order they were added.
	networks []simNetwork

	scanStarted time.Time
	scanning    bool
	scanHang    bool

	joinTarget string
	joinAt     time.Time
	joinOK     bool
	joined     bool
	joinCalls  []string

	apActive bool
	apSSID   string
	apStarts int
}

type simNetwork struct {
	name string
	psk  []byte
}

// NewSimulator creates a simulator with no visible networks.
func NewSimulator(cfg SimulatorConfig) *Simulator {
	return &Simulator{
		config: cfg,
		now:    time.Now,
	}
}

// AddNetwork makes a network visible, replacing the secret of an existing
// network with the same name.
func (s *Simulator) AddNetwork(name, secret string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.networks {
		if s.networks[i].name == name {
			s.networks[i].psk = DerivePSK(name, secret)
			return
		}
	}
	s.networks = append(s.networks, simNetwork{name: name, psk: DerivePSK(name, secret)})
}

// RemoveNetwork hides a network. An association with it is dropped.
func (s *Simulator) RemoveNetwork(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.networks {
		if s.networks[i].name == name {
			s.networks = append(s.networks[:i], s.networks[i+1:]...)
			if s.joinTarget == name {
				s.joined = false
				s.joinOK = false
				s.joinTarget = ""
			}
			return true
		}
	}
	return false
}

// Networks returns the visible network names.
func (s *Simulator) Networks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.namesLocked()
}

// SetScanHang makes subsequent scans never complete.
func (s *Simulator) SetScanHang(hang bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanHang = hang
}

// JoinCalls returns the network names passed to Join, in call order.
func (s *Simulator) JoinCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.joinCalls))
	copy(out, s.joinCalls)
	return out
}

// AccessPointActive reports whether the fallback AP is up.
func (s *Simulator) AccessPointActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apActive
}

// AccessPointSSID returns the SSID of the active AP, or "" when down.
func (s *Simulator) AccessPointSSID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apSSID
}

// AccessPointStarts returns how many times the AP was started.
func (s *Simulator) AccessPointStarts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apStarts
}

// ConnectedNetwork returns the joined network name, or "" if not joined.
func (s *Simulator) ConnectedNetwork() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.advanceLocked()
	if !s.joined {
		return ""
	}
	return s.joinTarget
}

// Joined reports whether a join has completed.
func (s *Simulator) Joined() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.advanceLocked()
	return s.joined
}

// StartScan begins a scan.
func (s *Simulator) StartScan() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scanning = true
	s.scanStarted = s.now()
	return nil
}

// ScanResults returns the visible networks once ScanDelay has elapsed.
func (s *Simulator) ScanResults() ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.scanning || s.scanHang {
		return nil, false
	}
	if s.now().Sub(s.scanStarted) < s.config.ScanDelay {
		return nil, false
	}
	return s.namesLocked(), true
}

// Join requests association with the named network.
func (s *Simulator) Join(name, secret string) error {
	psk := DerivePSK(name, secret)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.joinCalls = append(s.joinCalls, name)
	s.joined = false
	s.joinTarget = name
	s.joinAt = s.now().Add(s.config.JoinDelay)
	s.joinOK = false
	for _, n := range s.networks {
		if n.name == name && subtle.ConstantTimeCompare(n.psk, psk) == 1 {
			s.joinOK = true
			break
		}
	}
	return nil
}

// Disconnect drops the association and any pending join.
func (s *Simulator) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.joined = false
	s.joinOK = false
	s.joinTarget = ""
	return nil
}

// StartAccessPoint activates the simulated AP.
func (s *Simulator) StartAccessPoint(ssid, passphrase string) (net.IP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.apActive {
		return nil, ErrAccessPointUp
	}
	s.apActive = true
	s.apSSID = ssid
	s.apStarts++
	return DefaultAccessPointIP, nil
}

// StopAccessPoint deactivates the simulated AP.
func (s *Simulator) StopAccessPoint() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apActive = false
	s.apSSID = ""
	return nil
}

func (s *Simulator) advanceLocked() {
	if !s.joined && s.joinOK && !s.now().Before(s.joinAt) {
		s.joined = true
	}
}

func (s *Simulator) namesLocked() []string {
	names := make([]string, len(s.networks))
	for i, n := range s.networks {
		names[i] = n.name
	}
	return names
}

// Compile-time interface satisfaction check.
var _ Driver = (*Simulator)(nil)
