package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("invalid file name")

// Store is the byte store behind the /files routes.
type Store interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	Close() error
}

type dirStore struct {
	root *os.Root
}

// NewDirStore opens dir as the base directory. Names passed to Read and
// Write are resolved inside it and can not escape it.
func NewDirStore(dir string) (Store, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open base directory: %w", err)
	}
	return &dirStore{root: root}, nil
}

func (s *dirStore) Read(name string) ([]byte, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	return s.root.ReadFile(name)
}

// Write replaces name with data. The data goes to a temporary file first and
// is renamed into place, so concurrent writers never interleave and the last
// rename wins.
func (s *dirStore) Write(name string, data []byte) (err error) {
	if name == "" {
		return ErrInvalidName
	}

	tmp := ".httplite-" + uuid.NewString() + ".tmp"
	f, err := s.root.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = s.root.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush %s: %w", name, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err = s.root.Rename(tmp, name); err != nil {
		return fmt.Errorf("rename into %s: %w", name, err)
	}
	return nil
}

func (s *dirStore) Close() error {
	return s.root.Close()
}
