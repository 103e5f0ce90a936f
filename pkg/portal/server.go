package portal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/wifi-custodian/custodian-go/pkg/connection"
	"github.com/wifi-custodian/custodian-go/pkg/credential"
	"github.com/wifi-custodian/custodian-go/pkg/discovery"
	"github.com/wifi-custodian/custodian-go/pkg/log"
)

// Defaults.
const (
	DefaultAddr            = ":80"
	DefaultRefreshInterval = 15 * time.Second
	DefaultTitle           = "Wi-Fi Setup"
)

// readHeaderTimeout bounds slow clients on the AP.
const readHeaderTimeout = 10 * time.Second

// ErrAlreadyStarted is returned by Start on a running server.
var ErrAlreadyStarted = errors.New("portal already started")

// Manager is the connection manager as seen by the portal.
type Manager interface {
	State() connection.State
	Timeout() time.Duration
	Store() *credential.Store
	BeginManualAttempt(c credential.Credential) error
	ManualAttempt() connection.AttemptState
	ResetManualAttempt()
	CompleteProvisioning() error
	StoreFull() bool
}

// Config configures a Server.
type Config struct {
	// Addr is the listen address. Default ":80".
	Addr string

	// RefreshInterval is how often the wait page re-polls /update.
	RefreshInterval time.Duration

	// Title is shown on every page.
	Title string

	// AccessPointSSID is advertised in the mDNS TXT records.
	AccessPointSSID string

	// Advertiser announces the portal while it runs. Optional.
	Advertiser discovery.Advertiser

	// Logger is the optional logger for operational output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// EventLogger receives one request event per HTTP request.
	// If nil, events are discarded.
	EventLogger log.Logger
}

// DefaultConfig returns the default portal configuration.
func DefaultConfig() Config {
	return Config{
		Addr:            DefaultAddr,
		RefreshInterval: DefaultRefreshInterval,
		Title:           DefaultTitle,
	}
}

// Server is the provisioning portal HTTP server.
type Server struct {
	config Config
	mgr    Manager
	mux    *http.ServeMux
	logger *slog.Logger
	events log.Logger

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	done     chan struct{}
}

// NewServer creates a portal for mgr.
func NewServer(mgr Manager, cfg Config) *Server {
	d := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = d.Addr
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = d.RefreshInterval
	}
	if cfg.Title == "" {
		cfg.Title = d.Title
	}

	s := &Server{
		config: cfg,
		mgr:    mgr,
		mux:    http.NewServeMux(),
		logger: cfg.Logger,
		events: log.OrNoop(cfg.EventLogger),
	}
	s.registerRoutes()
	return s
}

// registerRoutes sets up all HTTP routes.
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/update", s.handleUpdate)
	s.mux.HandleFunc("/connect", s.handleConnect)
	s.mux.HandleFunc("/delete", s.handleDelete)
	s.mux.HandleFunc("/status", s.handleStatus)
}

// Handler returns the portal's HTTP handler, including request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return ErrAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Addr, err)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.warn("portal server stopped", "error", err)
		}
	}()

	s.server = srv
	s.listener = ln
	s.done = done
	s.info("portal listening", "addr", ln.Addr().String())

	if s.config.Advertiser != nil {
		info := &discovery.PortalInfo{
			AccessPoint: s.config.AccessPointSSID,
			Port:        uint16(ln.Addr().(*net.TCPAddr).Port),
			Path:        "/",
		}
		if err := s.config.Advertiser.AdvertisePortal(ctx, info); err != nil {
			s.warn("portal advertisement failed", "error", err)
		}
	}
	return nil
}

// Stop withdraws the advertisement and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.server, s.done
	s.server, s.listener, s.done = nil, nil, nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	if s.config.Advertiser != nil {
		if err := s.config.Advertiser.StopPortal(); err != nil {
			s.warn("stop advertisement", "error", err)
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown portal: %w", err)
	}
	<-done
	s.info("portal stopped")
	return nil
}

// Addr returns the address the server is listening on, or "" if stopped.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) info(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Server) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

// Compile-time interface satisfaction checks.
var (
	_ connection.Portal = (*Server)(nil)
	_ Manager           = (*connection.Manager)(nil)
)
