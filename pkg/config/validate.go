package config

import (
	"fmt"

	"github.com/wifi-custodian/custodian-go/pkg/credential"
)

// Validate checks configuration correctness.
// It does not mutate the configuration.
func Validate(cfg *Config) error {
	if cfg.Store.Path == "" {
		return fmt.Errorf("store.path: must not be empty")
	}
	if cfg.Store.Size < credential.LayoutSize {
		return fmt.Errorf("store.size: %d is smaller than the credential layout (%d bytes)", cfg.Store.Size, credential.LayoutSize)
	}

	positive := []struct {
		name  string
		value int
	}{
		{"connection.join_timeout_s", cfg.Connection.JoinTimeoutS},
		{"connection.join_poll_ms", cfg.Connection.JoinPollMs},
		{"connection.scan_timeout_ms", cfg.Connection.ScanTimeoutMs},
		{"connection.scan_poll_ms", cfg.Connection.ScanPollMs},
		{"portal.refresh_s", cfg.Portal.RefreshS},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s: must be positive, got %d", p.name, p.value)
		}
	}

	if cfg.AccessPoint.SSID == "" {
		return fmt.Errorf("access_point.ssid: must not be empty")
	}
	if len(cfg.AccessPoint.SSID) > 32 {
		return fmt.Errorf("access_point.ssid: %d bytes, max 32", len(cfg.AccessPoint.SSID))
	}
	if n := len(cfg.AccessPoint.Passphrase); n != 0 && (n < 8 || n > 63) {
		return fmt.Errorf("access_point.passphrase: %d bytes, must be empty or 8..63", n)
	}

	if cfg.Portal.Listen == "" {
		return fmt.Errorf("portal.listen: must not be empty")
	}

	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if cfg.Simulation.ScanDelayMs < 0 || cfg.Simulation.JoinDelayMs < 0 {
		return fmt.Errorf("simulation: delays must not be negative")
	}
	seen := make(map[string]bool)
	for i, n := range cfg.Simulation.Networks {
		c := credential.Credential{Name: n.Name, Secret: n.Secret}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("simulation.networks[%d]: %w", i, err)
		}
		if seen[n.Name] {
			return fmt.Errorf("simulation.networks[%d]: duplicate network %q", i, n.Name)
		}
		seen[n.Name] = true
	}

	return nil
}
