package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wifi-custodian/custodian-go/pkg/config"
	"github.com/wifi-custodian/custodian-go/pkg/log"
)

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	applyFlags(cfg, Flags{
		StorePath: "/tmp/wifi.eeprom",
		LogLevel:  "debug",
		Timeout:   30,
		Listen:    ":8080",
		EventLog:  "device.clog",
	})

	assert.Equal(t, "/tmp/wifi.eeprom", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 30, cfg.Connection.JoinTimeoutS)
	assert.Equal(t, ":8080", cfg.Portal.Listen)
	assert.Equal(t, "device.clog", cfg.Log.EventLog)
	assert.NoError(t, config.Validate(cfg))
}

func TestApplyFlagsKeepsConfigWhenUnset(t *testing.T) {
	cfg := config.Default()
	want := *config.Default()

	applyFlags(cfg, Flags{})

	assert.Equal(t, want, *cfg)
}

func TestOpenEventLog(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("SlogOnly", func(t *testing.T) {
		events, closeFn, err := openEventLog("", logger)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &log.SlogAdapter{}, events)
	})

	t.Run("WithFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "events.clog")
		events, closeFn, err := openEventLog(path, logger)
		require.NoError(t, err)

		events.Log(log.NewEvent(log.ComponentManager, log.CategoryState))
		closeFn()

		reader, err := log.NewReader(path)
		require.NoError(t, err)
		defer reader.Close()
		all, err := reader.ReadAll()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestPrintPortalInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := config.Default()
	printPortalInfo(logger, cfg)
	assert.Contains(t, buf.String(), "url=http://192.168.4.1/")
	assert.Contains(t, buf.String(), "ssid=espThing")

	buf.Reset()
	cfg.Portal.Listen = ":8080"
	printPortalInfo(logger, cfg)
	assert.Contains(t, buf.String(), "url=http://192.168.4.1:8080/")
}
