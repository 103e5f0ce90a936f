// Package config loads the device configuration from YAML.
//
// Every field has a default, so an empty or missing file yields a working
// configuration. Load applies defaults before unmarshalling; Validate
// checks the result without mutating it.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wifi-custodian/custodian-go/pkg/credential"
)

// Config is the device configuration.
type Config struct {
	Store       StoreConfig       `yaml:"store"`
	Connection  ConnectionConfig  `yaml:"connection"`
	AccessPoint AccessPointConfig `yaml:"access_point"`
	Portal      PortalConfig      `yaml:"portal"`
	Log         LogConfig         `yaml:"log"`
	Simulation  SimulationConfig  `yaml:"simulation"`
}

// ---- STORE ----

type StoreConfig struct {
	Path string `yaml:"path"`
	Size int    `yaml:"size"`
}

// ---- CONNECTION ----

type ConnectionConfig struct {
	JoinTimeoutS  int `yaml:"join_timeout_s"`
	JoinPollMs    int `yaml:"join_poll_ms"`
	ScanTimeoutMs int `yaml:"scan_timeout_ms"`
	ScanPollMs    int `yaml:"scan_poll_ms"`
}

// ---- ACCESS POINT ----

type AccessPointConfig struct {
	SSID       string `yaml:"ssid"`
	Passphrase string `yaml:"passphrase"`
}

// ---- PORTAL ----

type PortalConfig struct {
	Listen    string `yaml:"listen"`
	RefreshS  int    `yaml:"refresh_s"`
	Advertise bool   `yaml:"advertise"`
	Title     string `yaml:"title"`
}

// ---- LOG ----

type LogConfig struct {
	Level    string `yaml:"level"`
	EventLog string `yaml:"event_log"`
}

// ---- SIMULATION ----

type SimulationConfig struct {
	ScanDelayMs int                `yaml:"scan_delay_ms"`
	JoinDelayMs int                `yaml:"join_delay_ms"`
	Networks    []SimulatedNetwork `yaml:"networks"`
}

type SimulatedNetwork struct {
	Name   string `yaml:"name"`
	Secret string `yaml:"secret"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Path: "custodian.eeprom",
			Size: credential.LayoutSize,
		},
		Connection: ConnectionConfig{
			JoinTimeoutS:  15,
			JoinPollMs:    500,
			ScanTimeoutMs: 10000,
			ScanPollMs:    100,
		},
		AccessPoint: AccessPointConfig{
			SSID: "espThing",
		},
		Portal: PortalConfig{
			Listen:    ":80",
			RefreshS:  15,
			Advertise: true,
			Title:     "Wi-Fi Setup",
		},
		Log: LogConfig{
			Level: "info",
		},
		Simulation: SimulationConfig{
			ScanDelayMs: 200,
			JoinDelayMs: 500,
		},
	}
}

// Load reads the config file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
