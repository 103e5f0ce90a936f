package credential

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Credential errors.
var (
	ErrStoreFull      = errors.New("credential store full")
	ErrCorrupted      = errors.New("credential store corrupted")
	ErrSlotOutOfRange = errors.New("slot index out of range")
	ErrFieldTooLong   = errors.New("credential field too long")
	ErrEmptyName      = errors.New("credential name is empty")
	ErrFieldHasNUL    = errors.New("credential field contains a NUL byte")
	ErrStoreTooSmall  = errors.New("byte store too small for credential layout")
)

// Credential is a network name and passphrase pair.
type Credential struct {
	Name   string
	Secret string
}

// Validate checks that the credential fits the slot layout.
func (c Credential) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if len(c.Name) > MaxFieldLen {
		return fmt.Errorf("%w: name is %d bytes, max %d", ErrFieldTooLong, len(c.Name), MaxFieldLen)
	}
	if len(c.Secret) > MaxFieldLen {
		return fmt.Errorf("%w: secret is %d bytes, max %d", ErrFieldTooLong, len(c.Secret), MaxFieldLen)
	}
	// Slots are null-padded, so a NUL would truncate the field on load.
	if strings.IndexByte(c.Name, 0) >= 0 {
		return fmt.Errorf("%w: name", ErrFieldHasNUL)
	}
	if strings.IndexByte(c.Secret, 0) >= 0 {
		return fmt.Errorf("%w: secret", ErrFieldHasNUL)
	}
	return nil
}

// IsZero reports whether both fields are empty.
func (c Credential) IsZero() bool {
	return c.Name == "" && c.Secret == ""
}

// String returns the network name only; secrets are never formatted.
func (c Credential) String() string {
	return c.Name
}

// encodeField returns value as a null-padded FieldSize buffer.
func encodeField(value string) [FieldSize]byte {
	var buf [FieldSize]byte
	copy(buf[:MaxFieldLen], value)
	return buf
}

// decodeField returns the bytes of buf up to the first NUL.
func decodeField(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}
