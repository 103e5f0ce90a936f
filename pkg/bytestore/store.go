package bytestore

import (
	"errors"
	"fmt"
)

// Byte store errors.
var (
	ErrOutOfRange   = errors.New("offset out of range")
	ErrSizeMismatch = errors.New("image size mismatch")
	ErrInvalidSize  = errors.New("invalid store size")
)

// ErasedByte is the value of an erased flash/EEPROM cell.
const ErasedByte byte = 0xFF

// Store is a fixed-size persistent byte array.
//
// Write only modifies a cached copy; the change becomes durable when
// Commit returns without error.
type Store interface {
	// Size returns the number of addressable bytes.
	Size() int

	// Read returns the byte at offset.
	Read(offset int) (byte, error)

	// Write sets the byte at offset.
	Write(offset int, b byte) error

	// Commit flushes all pending writes to durable storage.
	Commit() error
}

func checkOffset(offset, size int) error {
	if offset < 0 || offset >= size {
		return fmt.Errorf("%w: %d (size %d)", ErrOutOfRange, offset, size)
	}
	return nil
}
