// Package storage provides a small key-value persistence medium: each key
// is a named slot holding one serialized value, backed by a file under a
// data directory. Slots are overwritten wholesale and atomically.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const tempFilePrefix = "noteapp-tmp-"

// Store persists named slots as files under a root directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the root directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file backing the given slot key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+".json")
}

// Get reads a slot. A missing slot is not an error; found reports whether
// the slot had a value.
func (s *Store) Get(key string) (data []byte, found bool, err error) {
	data, err = os.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading slot %s: %w", key, err)
	}
	return data, true, nil
}

// Set overwrites a slot wholesale. The write is atomic: data goes to a
// temp file in the same directory which is then renamed over the slot file,
// so readers never observe a partial value.
func (s *Store) Set(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	target := s.Path(key)

	tmpFile, err := os.CreateTemp(s.dir, tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("writing slot %s: %w", key, err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing slot %s: %w", key, err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing slot %s: %w", key, err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("writing slot %s: %w", key, err)
	}

	if err := os.Chmod(tmpFile.Name(), 0644); err != nil {
		return fmt.Errorf("writing slot %s: %w", key, err)
	}

	if err := os.Rename(tmpFile.Name(), target); err != nil {
		return fmt.Errorf("writing slot %s: %w", key, err)
	}

	return nil
}

// sanitizeKey maps a slot key to a safe file name. Keys like "@notes" pass
// through unchanged; path separators and other suspect characters do not.
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '@', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, key)
}
