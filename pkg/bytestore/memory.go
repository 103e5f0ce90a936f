package bytestore

import "sync"

// MemoryStore is an in-memory implementation of the Store interface.
// This is primarily useful for testing and for hosts without persistence.
type MemoryStore struct {
	mu sync.Mutex

	working []byte
	durable []byte
	commits int
}

// NewMemoryStore creates a zero-filled store of the given size.
func NewMemoryStore(size int) *MemoryStore {
	if size < 0 {
		size = 0
	}
	return &MemoryStore{
		working: make([]byte, size),
		durable: make([]byte, size),
	}
}

// NewMemoryStoreFrom creates a store whose durable image is a copy of image.
func NewMemoryStoreFrom(image []byte) *MemoryStore {
	s := &MemoryStore{
		working: make([]byte, len(image)),
		durable: make([]byte, len(image)),
	}
	copy(s.working, image)
	copy(s.durable, image)
	return s
}

// Size returns the number of addressable bytes.
func (s *MemoryStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.working)
}

// Read returns the byte at offset from the working buffer.
func (s *MemoryStore) Read(offset int) (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkOffset(offset, len(s.working)); err != nil {
		return 0, err
	}
	return s.working[offset], nil
}

// Write sets the byte at offset in the working buffer.
func (s *MemoryStore) Write(offset int, b byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkOffset(offset, len(s.working)); err != nil {
		return err
	}
	s.working[offset] = b
	return nil
}

// Commit copies the working buffer to the durable image.
func (s *MemoryStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copy(s.durable, s.working)
	s.commits++
	return nil
}

// Reload discards uncommitted writes by resetting the working buffer to
// the durable image.
func (s *MemoryStore) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.working, s.durable)
}

// Durable returns a copy of the durable image.
func (s *MemoryStore) Durable() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]byte, len(s.durable))
	copy(out, s.durable)
	return out
}

// Commits returns how many times Commit has been called.
func (s *MemoryStore) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// Compile-time interface satisfaction check.
var _ Store = (*MemoryStore)(nil)
