// Package radio defines the contract between the connection manager and
// the wireless radio driver, plus a simulator for hosts without a radio.
//
// The driver primitives are deliberately non-blocking: StartScan and Join
// only issue requests, and completion is observed by polling ScanResults
// and Joined. Bounding those waits is the caller's job.
package radio

import "net"

// Driver is the radio driver used by the connection manager.
type Driver interface {
	// Joined reports whether the station interface is associated with a
	// network and has completed the join handshake.
	Joined() bool

	// StartScan begins a scan for visible networks.
	StartScan() error

	// ScanResults returns the visible network names once the scan started
	// by StartScan has completed. done is false while the scan is running.
	ScanResults() (names []string, done bool)

	// Join requests association with the named network. It returns once
	// the request is issued; use Joined to observe completion.
	Join(name, secret string) error

	// Disconnect abandons any association or in-flight join.
	Disconnect() error

	// StartAccessPoint brings up the fallback access point and returns its
	// address once the AP is active. An empty passphrase means an open AP.
	StartAccessPoint(ssid, passphrase string) (net.IP, error)

	// StopAccessPoint tears down the fallback access point.
	StopAccessPoint() error
}
