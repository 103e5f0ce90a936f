package radio

import (
	"crypto/sha1"

	"golang.org/x/crypto/pbkdf2"
)

// WPA2 pre-shared key derivation parameters (IEEE 802.11i).
const (
	PSKIterations = 4096
	PSKLen        = 32
)

// DerivePSK returns the WPA2 pre-shared key for passphrase on the network
// named ssid. An empty passphrase denotes an open network and yields nil.
func DerivePSK(ssid, passphrase string) []byte {
	if passphrase == "" {
		return nil
	}
	return pbkdf2.Key([]byte(passphrase), []byte(ssid), PSKIterations, PSKLen, sha1.New)
}
