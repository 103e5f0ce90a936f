package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wifi-custodian/custodian-go/pkg/connection"
	"github.com/wifi-custodian/custodian-go/pkg/portal"
	"github.com/wifi-custodian/custodian-go/pkg/radio"
)

// ParseLevel parses a log level name. An empty name means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q", s)
	}
}

// ConnectionConfig returns the manager configuration. Loggers are left for
// the caller to set.
func (c *Config) ConnectionConfig() connection.Config {
	return connection.Config{
		JoinTimeout:           time.Duration(c.Connection.JoinTimeoutS) * time.Second,
		JoinPollInterval:      time.Duration(c.Connection.JoinPollMs) * time.Millisecond,
		ScanTimeout:           time.Duration(c.Connection.ScanTimeoutMs) * time.Millisecond,
		ScanPollInterval:      time.Duration(c.Connection.ScanPollMs) * time.Millisecond,
		AccessPointSSID:       c.AccessPoint.SSID,
		AccessPointPassphrase: c.AccessPoint.Passphrase,
	}
}

// PortalConfig returns the portal configuration without an advertiser or
// loggers.
func (c *Config) PortalConfig() portal.Config {
	return portal.Config{
		Addr:            c.Portal.Listen,
		RefreshInterval: time.Duration(c.Portal.RefreshS) * time.Second,
		Title:           c.Portal.Title,
		AccessPointSSID: c.AccessPoint.SSID,
	}
}

// SimulatorConfig returns the simulated radio timing.
func (c *Config) SimulatorConfig() radio.SimulatorConfig {
	return radio.SimulatorConfig{
		ScanDelay: time.Duration(c.Simulation.ScanDelayMs) * time.Millisecond,
		JoinDelay: time.Duration(c.Simulation.JoinDelayMs) * time.Millisecond,
	}
}
