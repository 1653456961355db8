package shelf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage is a string key/value slot store in the manner of a browser's
// localStorage.
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
}

// FileStorage keeps each key in its own file, <dir>/<key>.json.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (s *FileStorage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileStorage) GetItem(key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(b), true, nil
}

// SetItem replaces the value atomically: it writes a temp file next to the
// slot and renames it into place.
func (s *FileStorage) SetItem(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}

	if err := os.Rename(tmpName, p); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// MemoryStorage is a Storage that lives only as long as the process. The
// zero value is ready to use.
type MemoryStorage struct {
	items map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: map[string]string{}}
}

func (s *MemoryStorage) GetItem(key string) (string, bool, error) {
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *MemoryStorage) SetItem(key, value string) error {
	if s.items == nil {
		s.items = map[string]string{}
	}
	s.items[key] = value
	return nil
}
