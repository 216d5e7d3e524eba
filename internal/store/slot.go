package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Slot is a key-value area scoped to a single data directory, the
// equivalent of a browser origin's local storage.
type Slot interface {
	// Get returns the value for key. ok is false if the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FileSlot stores each key as <Dir>/<key>.json.
type FileSlot struct {
	Dir string
}

// NewFileSlot creates a slot rooted at dir. The directory is created on
// first write.
func NewFileSlot(dir string) *FileSlot {
	return &FileSlot{Dir: dir}
}

// Path returns the file path backing key.
func (s *FileSlot) Path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

// Get implements Slot.
func (s *FileSlot) Get(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read slot %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set implements Slot. The value is written to a temp file and renamed
// into place so readers never see a partial write.
func (s *FileSlot) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0700); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, s.Path(key)); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

// Delete implements Slot.
func (s *FileSlot) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := os.Remove(s.Path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}

func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid slot key %q", key)
	}
	return nil
}
