package connection

import (
	"log/slog"
	"time"

	"github.com/wifi-custodian/custodian-go/pkg/log"
)

// Default timing and access point settings.
const (
	DefaultJoinTimeout      = 15 * time.Second
	DefaultJoinPollInterval = 500 * time.Millisecond
	DefaultScanTimeout      = 10 * time.Second
	DefaultScanPollInterval = 100 * time.Millisecond
	DefaultAccessPointSSID  = "espThing"
)

// Config configures a Manager.
type Config struct {
	// JoinTimeout bounds each join attempt. SetTimeout overrides it later.
	JoinTimeout time.Duration

	// JoinPollInterval is how often Joined is polled during a join.
	JoinPollInterval time.Duration

	// ScanTimeout bounds the wait for scan results.
	ScanTimeout time.Duration

	// ScanPollInterval is how often ScanResults is polled.
	ScanPollInterval time.Duration

	// AccessPointSSID is the SSID of the fallback access point.
	AccessPointSSID string

	// AccessPointPassphrase secures the fallback AP. Empty means open.
	AccessPointPassphrase string

	// Logger is the optional logger for operational output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// EventLogger receives state, scan and join events.
	// If nil, events are discarded.
	EventLogger log.Logger
}

// DefaultConfig returns the default manager configuration.
func DefaultConfig() Config {
	return Config{
		JoinTimeout:      DefaultJoinTimeout,
		JoinPollInterval: DefaultJoinPollInterval,
		ScanTimeout:      DefaultScanTimeout,
		ScanPollInterval: DefaultScanPollInterval,
		AccessPointSSID:  DefaultAccessPointSSID,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.JoinTimeout <= 0 {
		c.JoinTimeout = d.JoinTimeout
	}
	if c.JoinPollInterval <= 0 {
		c.JoinPollInterval = d.JoinPollInterval
	}
	if c.ScanTimeout <= 0 {
		c.ScanTimeout = d.ScanTimeout
	}
	if c.ScanPollInterval <= 0 {
		c.ScanPollInterval = d.ScanPollInterval
	}
	if c.AccessPointSSID == "" {
		c.AccessPointSSID = d.AccessPointSSID
	}
	return c
}
