// Command custodian-device runs the Wi-Fi credential custodian against a
// simulated radio.
//
// On start it tries every stored network in order. If none can be joined it
// raises the fallback access point and serves the provisioning portal until
// a network entered there has been joined.
//
// Usage:
//
//	custodian-device [flags]
//
// Flags:
//
//	-config string      Configuration file path
//	-store string       Credential store file (overrides store.path)
//	-log-level string   Log level: debug, info, warn, error
//	-timeout int        Per-network join timeout in seconds
//	-listen string      Portal listen address (overrides portal.listen)
//	-event-log string   Write provisioning events to this file
//	-interactive        Start the interactive console
//
// Examples:
//
//	# Start with defaults and a simulated home network
//	custodian-device -config custodian.yaml
//
//	# Serve the portal on a high port and record events
//	custodian-device -listen :8080 -event-log device.clog -interactive
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/wifi-custodian/custodian-go/cmd/custodian-device/interactive"
	"github.com/wifi-custodian/custodian-go/pkg/bytestore"
	"github.com/wifi-custodian/custodian-go/pkg/config"
	"github.com/wifi-custodian/custodian-go/pkg/connection"
	"github.com/wifi-custodian/custodian-go/pkg/credential"
	"github.com/wifi-custodian/custodian-go/pkg/discovery"
	"github.com/wifi-custodian/custodian-go/pkg/log"
	"github.com/wifi-custodian/custodian-go/pkg/portal"
	"github.com/wifi-custodian/custodian-go/pkg/radio"
	"github.com/wifi-custodian/custodian-go/pkg/version"
)

// Flags holds the command-line overrides.
type Flags struct {
	ConfigFile  string
	StorePath   string
	LogLevel    string
	Timeout     int
	Listen      string
	EventLog    string
	Interactive bool
}

var flags Flags

func init() {
	flag.StringVar(&flags.ConfigFile, "config", "", "Configuration file path")
	flag.StringVar(&flags.StorePath, "store", "", "Credential store file (overrides store.path)")
	flag.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.IntVar(&flags.Timeout, "timeout", 0, "Per-network join timeout in seconds")
	flag.StringVar(&flags.Listen, "listen", "", "Portal listen address (overrides portal.listen)")
	flag.StringVar(&flags.EventLog, "event-log", "", "Write provisioning events to this file")
	flag.BoolVar(&flags.Interactive, "interactive", false, "Start the interactive console")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cfg, flags)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	level, _ := config.ParseLevel(cfg.Log.Level)

	var console *interactive.Console
	var out io.Writer = os.Stderr
	if flags.Interactive {
		console, err = interactive.New()
		if err != nil {
			return err
		}
		out = console.Stdout()
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	logger.Info("custodian device starting",
		"version", version.Version,
		"store", cfg.Store.Path,
		"listen", cfg.Portal.Listen)

	events, closeEvents, err := openEventLog(cfg.Log.EventLog, logger)
	if err != nil {
		return err
	}
	defer closeEvents()

	bs, err := bytestore.OpenFileStore(cfg.Store.Path, cfg.Store.Size)
	if err != nil {
		return fmt.Errorf("open store file: %w", err)
	}
	store, err := credential.Open(bs, credential.StoreConfig{Logger: logger, EventLogger: events})
	if err != nil {
		return fmt.Errorf("open credential store: %w", err)
	}
	if rerr := store.Recovery(); rerr != nil {
		logger.Warn("credential store recovered", "error", rerr)
	}
	logger.Info("credential store opened", "count", store.Count(), "capacity", credential.MaxSlots)

	sim := radio.NewSimulator(cfg.SimulatorConfig())
	for _, n := range cfg.Simulation.Networks {
		sim.AddNetwork(n.Name, n.Secret)
	}

	connCfg := cfg.ConnectionConfig()
	connCfg.Logger = logger
	connCfg.EventLogger = events
	mgr := connection.NewManager(sim, store, connCfg)
	mgr.OnStateChange(func(oldState, newState connection.State) {
		if newState == connection.StateProvisioningActive {
			printPortalInfo(logger, cfg)
		}
	})

	portalCfg := cfg.PortalConfig()
	portalCfg.Logger = logger
	portalCfg.EventLogger = events
	if cfg.Portal.Advertise {
		portalCfg.Advertiser = discovery.NewMDNSAdvertiser(discovery.DefaultAdvertiserConfig())
	}
	mgr.SetPortal(portal.NewServer(mgr, portalCfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		ok, err := mgr.EnsureConnected(ctx)
		switch {
		case err != nil && ctx.Err() == nil:
			logger.Error("ensure connected failed", "error", err)
		case ok:
			logger.Info("network connected", "network", sim.ConnectedNetwork(), "state", mgr.State())
		}
	}()

	if console != nil {
		console.Bind(sim, mgr)
		go console.Run(ctx, cancel)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig.String())
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	cancel()
	<-done
	return nil
}

// applyFlags copies non-zero command-line overrides into cfg.
func applyFlags(cfg *config.Config, f Flags) {
	if f.StorePath != "" {
		cfg.Store.Path = f.StorePath
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.Timeout > 0 {
		cfg.Connection.JoinTimeoutS = f.Timeout
	}
	if f.Listen != "" {
		cfg.Portal.Listen = f.Listen
	}
	if f.EventLog != "" {
		cfg.Log.EventLog = f.EventLog
	}
}

// openEventLog returns the event sink: debug-level slog output, plus a
// CBOR file when path is set.
func openEventLog(path string, logger *slog.Logger) (log.Logger, func(), error) {
	adapter := log.NewSlogAdapter(logger).WithLevel(slog.LevelDebug)
	if path == "" {
		return adapter, func() {}, nil
	}

	fl, err := log.NewFileLogger(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open event log: %w", err)
	}
	logger.Info("recording events", "path", fl.Path())

	return log.NewMultiLogger(fl, adapter), func() {
		if err := fl.Close(); err != nil {
			logger.Warn("close event log", "error", err)
		}
	}, nil
}

func printPortalInfo(logger *slog.Logger, cfg *config.Config) {
	host := radio.DefaultAccessPointIP.String()
	if _, port, err := net.SplitHostPort(cfg.Portal.Listen); err == nil && port != "" && port != "80" {
		host = net.JoinHostPort(host, port)
	}
	logger.Info("provisioning portal active",
		"ssid", cfg.AccessPoint.SSID,
		"url", "http://"+host+"/")
}
