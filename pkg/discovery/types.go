package discovery

import (
	"errors"
	"time"
)

// Service type constants for mDNS.
const (
	// ServiceTypePortal is the service type of the provisioning portal.
	ServiceTypePortal = "_custodian._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the default portal port.
	DefaultPort = 80
)

// TXT record keys.
const (
	TXTKeyAccessPoint = "ap"   // SSID of the fallback AP
	TXTKeyPath        = "path" // Portal root path
	TXTKeyVersion     = "ver"  // TXT schema version
)

// Limits.
const (
	// MaxInstanceNameLen is the DNS label limit.
	MaxInstanceNameLen = 63
)

// Discovery errors.
var (
	ErrMissingRequired  = errors.New("missing required field")
	ErrInvalidTXTRecord = errors.New("invalid TXT record")
)

// TXTRecordMap is a parsed set of TXT records.
type TXTRecordMap map[string]string

// PortalInfo describes an advertised portal.
type PortalInfo struct {
	// AccessPoint is the SSID of the fallback AP.
	AccessPoint string

	// Port is the portal HTTP port. Zero means DefaultPort.
	Port uint16

	// Path is the portal root path. Empty means "/".
	Path string
}

// AdvertiserConfig configures advertiser behavior.
type AdvertiserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string

	// TTL is the DNS record TTL.
	// Default: 120 seconds.
	TTL time.Duration
}

// DefaultAdvertiserConfig returns the default advertiser configuration.
func DefaultAdvertiserConfig() AdvertiserConfig {
	return AdvertiserConfig{
		Interface: "",
		TTL:       120 * time.Second,
	}
}
