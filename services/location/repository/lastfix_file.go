package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piresc/routefinder/internal/pkg/models"
)

// LastFixFile keeps the last-known location in a single JSON file
type LastFixFile struct {
	path string
}

// NewLastFixFile creates the store at path
func NewLastFixFile(path string) *LastFixFile {
	return &LastFixFile{path: path}
}

// Path returns the backing file
func (r *LastFixFile) Path() string {
	return r.path
}

// Save overwrites the stored fix
func (r *LastFixFile) Save(ctx context.Context, fix models.LastFix) error {
	if err := fix.Coordinate().Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(fix)
	if err != nil {
		return fmt.Errorf("failed to encode last fix: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create last fix directory: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write last fix: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace last fix: %w", err)
	}
	return nil
}

// Load returns the stored fix, or false when nothing has been saved yet
func (r *LastFixFile) Load(ctx context.Context) (models.LastFix, bool, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.LastFix{}, false, nil
	}
	if err != nil {
		return models.LastFix{}, false, fmt.Errorf("failed to read last fix: %w", err)
	}

	var fix models.LastFix
	if err := json.Unmarshal(data, &fix); err != nil {
		return models.LastFix{}, false, fmt.Errorf("failed to decode last fix: %w", err)
	}
	if err := fix.Coordinate().Validate(); err != nil {
		return models.LastFix{}, false, err
	}
	return fix, true, nil
}
