package bytestore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the byte image to a single file.
// Reads and writes operate on an in-memory copy; Commit rewrites the file.
type FileStore struct {
	mu    sync.Mutex
	path  string
	image []byte
	dirty bool
}

// OpenFileStore opens the image at path. If the file does not exist, an
// erased image of the given size is created and committed. An existing
// file whose length differs from size is rejected with ErrSizeMismatch.
func OpenFileStore(path string, size int) (*FileStore, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.image = make([]byte, size)
		for i := range s.image {
			s.image[i] = ErasedByte
		}
		s.dirty = true
		if err := s.Commit(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if len(data) != size {
		return nil, fmt.Errorf("%w: %s has %d bytes, want %d", ErrSizeMismatch, path, len(data), size)
	}
	s.image = data
	return s, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Size returns the number of addressable bytes.
func (s *FileStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.image)
}

// Read returns the byte at offset.
func (s *FileStore) Read(offset int) (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkOffset(offset, len(s.image)); err != nil {
		return 0, err
	}
	return s.image[offset], nil
}

// Write sets the byte at offset. The change is not durable until Commit.
func (s *FileStore) Write(offset int, b byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkOffset(offset, len(s.image)); err != nil {
		return err
	}
	if s.image[offset] != b {
		s.image[offset] = b
		s.dirty = true
	}
	return nil
}

// Commit writes the image to disk if anything changed since the last commit.
// The file is replaced atomically via a temp file and rename.
func (s *FileStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(s.image); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}

	s.dirty = false
	return nil
}

// Compile-time interface satisfaction check.
var _ Store = (*FileStore)(nil)
