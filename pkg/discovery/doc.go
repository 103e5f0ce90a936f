// Package discovery advertises the provisioning portal over mDNS/DNS-SD.
//
// While the fallback access point is up, the portal is announced as
// _custodian._tcp in the local domain so clients joined to the AP can find
// it without knowing its address.
//
// # TXT Records
//
//   - ap: SSID of the fallback access point
//   - path: portal root path, always "/"
//   - ver: TXT schema version, currently "1"
//
// The instance name is the AP SSID, truncated to the DNS label limit.
package discovery
