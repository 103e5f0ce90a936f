package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custodian.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))

	conn := cfg.ConnectionConfig()
	assert.Equal(t, 15*time.Second, conn.JoinTimeout)
	assert.Equal(t, 500*time.Millisecond, conn.JoinPollInterval)
	assert.Equal(t, 10*time.Second, conn.ScanTimeout)
	assert.Equal(t, 100*time.Millisecond, conn.ScanPollInterval)
	assert.Equal(t, "espThing", conn.AccessPointSSID)

	p := cfg.PortalConfig()
	assert.Equal(t, ":80", p.Addr)
	assert.Equal(t, 15*time.Second, p.RefreshInterval)
	assert.Equal(t, "espThing", p.AccessPointSSID)
}

func TestLoad(t *testing.T) {
	t.Run("EmptyPath", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("OverridesDefaults", func(t *testing.T) {
		path := writeConfig(t, `
connection:
  join_timeout_s: 5
access_point:
  ssid: setup-ap
  passphrase: supersecret
portal:
  listen: 127.0.0.1:8080
simulation:
  networks:
    - name: home
      secret: pw
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.NoError(t, Validate(cfg))

		assert.Equal(t, 5, cfg.Connection.JoinTimeoutS)
		assert.Equal(t, 500, cfg.Connection.JoinPollMs, "unset fields keep defaults")
		assert.Equal(t, "setup-ap", cfg.AccessPoint.SSID)
		assert.Equal(t, "127.0.0.1:8080", cfg.Portal.Listen)
		assert.True(t, cfg.Portal.Advertise)
		require.Len(t, cfg.Simulation.Networks, 1)
		assert.Equal(t, SimulatedNetwork{Name: "home", Secret: "pw"}, cfg.Simulation.Networks[0])
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Load(writeConfig(t, "store: [unclosed"))
		assert.ErrorContains(t, err, "parse config")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"EmptyStorePath", func(c *Config) { c.Store.Path = "" }, "store.path"},
		{"SmallStore", func(c *Config) { c.Store.Size = 100 }, "store.size"},
		{"ZeroJoinTimeout", func(c *Config) { c.Connection.JoinTimeoutS = 0 }, "connection.join_timeout_s"},
		{"NegativeScanPoll", func(c *Config) { c.Connection.ScanPollMs = -1 }, "connection.scan_poll_ms"},
		{"EmptySSID", func(c *Config) { c.AccessPoint.SSID = "" }, "access_point.ssid"},
		{"LongSSID", func(c *Config) { c.AccessPoint.SSID = strings.Repeat("s", 33) }, "access_point.ssid"},
		{"ShortPassphrase", func(c *Config) { c.AccessPoint.Passphrase = "short" }, "access_point.passphrase"},
		{"EmptyListen", func(c *Config) { c.Portal.Listen = "" }, "portal.listen"},
		{"BadLevel", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"BadNetwork", func(c *Config) {
			c.Simulation.Networks = []SimulatedNetwork{{Name: ""}}
		}, "simulation.networks[0]"},
		{"DuplicateNetwork", func(c *Config) {
			c.Simulation.Networks = []SimulatedNetwork{{Name: "home"}, {Name: "home"}}
		}, "simulation.networks[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
