package credential

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/wifi-custodian/custodian-go/pkg/bytestore"
	"github.com/wifi-custodian/custodian-go/pkg/log"
)

// StoreConfig configures a Store.
type StoreConfig struct {
	// Logger is the optional logger for operational output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// EventLogger receives store events. If nil, events are discarded.
	EventLogger log.Logger
}

// Store is the credential list persisted in a byte store.
type Store struct {
	mu sync.Mutex

	bs    bytestore.Store
	count int

	// recovery is set when Open reset a corrupt count.
	recovery error

	logger *slog.Logger
	events log.Logger
}

// Open reads the credential count from bs. A count outside [0, MaxSlots]
// is reset to zero and the reset is committed before Open returns.
func Open(bs bytestore.Store, cfg StoreConfig) (*Store, error) {
	if bs.Size() < LayoutSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrStoreTooSmall, bs.Size(), LayoutSize)
	}

	s := &Store{
		bs:     bs,
		logger: cfg.Logger,
		events: log.OrNoop(cfg.EventLogger),
	}

	raw, err := bs.Read(CountOffset)
	if err != nil {
		return nil, fmt.Errorf("read count: %w", err)
	}

	if int(raw) > MaxSlots {
		if err := bs.Write(CountOffset, 0); err != nil {
			return nil, fmt.Errorf("reset count: %w", err)
		}
		if err := bs.Commit(); err != nil {
			return nil, fmt.Errorf("commit count reset: %w", err)
		}
		s.recovery = fmt.Errorf("%w: persisted count %d exceeds %d, reset to 0", ErrCorrupted, raw, MaxSlots)
		s.warn("credential store reset", "raw_count", int(raw))
		s.emit(log.StoreEvent{Op: log.StoreOpReset, RawCount: int(raw)})
		return s, nil
	}

	s.count = int(raw)
	return s, nil
}

// Recovery returns an error wrapping ErrCorrupted if Open had to reset the
// store, or nil otherwise.
func (s *Store) Recovery() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recovery
}

// Count returns the number of valid slots.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Full reports whether every slot is occupied.
func (s *Store) Full() bool {
	return s.Count() >= MaxSlots
}

// Load reads the credential in slot index.
func (s *Store) Load(index int) (Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= s.count {
		return Credential{}, fmt.Errorf("%w: %d (count %d)", ErrSlotOutOfRange, index, s.count)
	}
	return s.loadLocked(index)
}

// List loads every valid slot in order.
func (s *Store) List() ([]Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Credential, 0, s.count)
	for i := 0; i < s.count; i++ {
		c, err := s.loadLocked(i)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Append stores c in the next free slot, commits and returns the slot
// index. It returns ErrStoreFull, leaving the store untouched, when all
// slots are occupied.
func (s *Store) Append(c Credential) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.count >= MaxSlots {
		s.emit(log.StoreEvent{Op: log.StoreOpRejected, Network: c.Name, Count: s.count})
		return 0, ErrStoreFull
	}

	index := s.count
	nameRange, secretRange := SlotOffset(index)
	if err := s.writeRange(nameRange, encodeField(c.Name)); err != nil {
		return 0, fmt.Errorf("write name: %w", err)
	}
	if err := s.writeRange(secretRange, encodeField(c.Secret)); err != nil {
		return 0, fmt.Errorf("write secret: %w", err)
	}
	if err := s.bs.Write(CountOffset, byte(index+1)); err != nil {
		return 0, fmt.Errorf("write count: %w", err)
	}
	if err := s.bs.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	s.count = index + 1
	s.debug("credential appended", "slot", index, "network", c.Name)
	s.emit(log.StoreEvent{Op: log.StoreOpAppend, Slot: index, Network: c.Name, Count: s.count})
	return index, nil
}

// WipeAll zeroes the count and every slot, then commits.
func (s *Store) WipeAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.bs.Write(CountOffset, 0); err != nil {
		return fmt.Errorf("write count: %w", err)
	}
	region := SlotRegion()
	for off := region.Start; off < region.End; off++ {
		if err := s.bs.Write(off, 0); err != nil {
			return fmt.Errorf("zero offset %d: %w", off, err)
		}
	}
	if err := s.bs.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.count = 0
	s.debug("credential store wiped")
	s.emit(log.StoreEvent{Op: log.StoreOpWipe})
	return nil
}

func (s *Store) loadLocked(index int) (Credential, error) {
	nameRange, secretRange := SlotOffset(index)
	name, err := s.readRange(nameRange)
	if err != nil {
		return Credential{}, fmt.Errorf("read name: %w", err)
	}
	secret, err := s.readRange(secretRange)
	if err != nil {
		return Credential{}, fmt.Errorf("read secret: %w", err)
	}
	return Credential{Name: decodeField(name), Secret: decodeField(secret)}, nil
}

func (s *Store) readRange(r Range) ([]byte, error) {
	buf := make([]byte, r.Len())
	for i := range buf {
		b, err := s.bs.Read(r.Start + i)
		if err != nil {
			return nil, err
		}
		buf[i] = b
	}
	return buf, nil
}

func (s *Store) writeRange(r Range, field [FieldSize]byte) error {
	for i := 0; i < r.Len(); i++ {
		if err := s.bs.Write(r.Start+i, field[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) emit(ev log.StoreEvent) {
	e := log.NewEvent(log.ComponentStore, log.CategoryStore)
	e.Store = &ev
	s.events.Log(e)
}

func (s *Store) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Store) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
