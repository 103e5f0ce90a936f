package discovery

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wifi-custodian/custodian-go/pkg/version"
)

// EncodePortalTXT builds the TXT records for a portal advertisement.
func EncodePortalTXT(info *PortalInfo) TXTRecordMap {
	path := info.Path
	if path == "" {
		path = "/"
	}
	return TXTRecordMap{
		TXTKeyAccessPoint: info.AccessPoint,
		TXTKeyPath:        path,
		TXTKeyVersion:     version.Current,
	}
}

// DecodePortalTXT parses portal TXT records.
func DecodePortalTXT(txt TXTRecordMap) (*PortalInfo, error) {
	ap, ok := txt[TXTKeyAccessPoint]
	if !ok || ap == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyAccessPoint)
	}
	if v := txt[TXTKeyVersion]; !version.CompatibleWithCurrent(v) {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrInvalidTXTRecord, v)
	}

	info := &PortalInfo{AccessPoint: ap, Path: txt[TXTKeyPath]}
	if info.Path == "" {
		info.Path = "/"
	}
	return info, nil
}

// TXTRecordsToStrings converts a TXTRecordMap to sorted "key=value" strings.
// This format is commonly used by mDNS libraries.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(result)
	return result
}

// StringsToTXTRecords parses a slice of "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 2 {
			txt[parts[0]] = parts[1]
		} else if len(parts) == 1 && parts[0] != "" {
			// Key without value (boolean flag)
			txt[parts[0]] = ""
		}
	}
	return txt
}

// InstanceName returns the mDNS instance name for an AP SSID.
func InstanceName(ssid string) string {
	if len(ssid) > MaxInstanceNameLen {
		return ssid[:MaxInstanceNameLen]
	}
	return ssid
}
