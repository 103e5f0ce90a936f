// Package log provides a structured provisioning event trace.
//
// This package defines the Logger interface and Event types for capturing
// what the connection manager, credential store and provisioning portal
// did, and in which order. It is separate from operational logging (slog):
// the event trace is a machine-readable record for debugging devices in the
// field, where the only window into a failed provisioning run is a log file
// pulled off the device afterwards.
//
// # Basic Usage
//
// Components accept an optional EventLogger in their config:
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// On the device: append to a binary file
//	cfg.EventLogger, _ = log.NewFileLogger("/var/log/custodian/events.clog")
//
//	// Both: use MultiLogger
//	cfg.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Every event names the component that emitted it and a category:
//   - State: connection state transitions (StateChangeEvent)
//   - Scan: completed or abandoned network scans (ScanEvent)
//   - Join: a single join attempt and its outcome (JoinEvent)
//   - Request: a portal HTTP request (RequestEvent)
//   - Store: credential store mutations and recovery (StoreEvent)
//   - Error: failures at any component (ErrorEventData)
//
// Secrets are never recorded; join and store events carry network names only.
//
// # File Format
//
// Log files use CBOR encoding with integer keys and the .clog extension.
// The custodian-log CLI provides viewing and statistics.
package log
