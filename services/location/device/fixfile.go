package device

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piresc/routefinder/internal/pkg/models"
)

// FixFile is the handoff file between the helper process (single writer) and the requester (single reader)
type FixFile struct {
	path string
}

// NewFixFile creates a handoff file at path
func NewFixFile(path string) *FixFile {
	return &FixFile{path: path}
}

// Path returns the handoff location
func (f *FixFile) Path() string {
	return f.path
}

// Clear removes any previous fix so a stale one is never read
func (f *FixFile) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear fix file: %w", err)
	}
	return nil
}

// Write publishes fix atomically: the reader sees either no file or the whole payload
func (f *FixFile) Write(fix models.LocationFix) error {
	data, err := json.Marshal(fix)
	if err != nil {
		return fmt.Errorf("failed to encode fix: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp fix file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write fix: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write fix: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to publish fix: %w", err)
	}
	return nil
}

// Read returns the published fix. exists is false while the helper has not written anything yet.
func (f *FixFile) Read() (fix models.LocationFix, exists bool, err error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.LocationFix{}, false, nil
	}
	if err != nil {
		return models.LocationFix{}, true, fmt.Errorf("failed to read fix file: %w", err)
	}

	if err := json.Unmarshal(data, &fix); err != nil {
		return models.LocationFix{}, true, fmt.Errorf("failed to parse fix file: %w", err)
	}
	return fix, true, nil
}
