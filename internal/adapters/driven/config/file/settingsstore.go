// Package file provides a TOML-backed implementation of the
// SettingsStore port. Settings live in a single file inside the
// plansift config directory.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/plansift/plansift-cli/internal/core/domain"
	"github.com/plansift/plansift-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is a file-based settings store using TOML.
type SettingsStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSettingsStore creates a store backed by the given file path.
// If path is empty, defaults to ~/.plansift/config.toml.
func NewSettingsStore(path string) (*SettingsStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".plansift", "config.toml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}

	return &SettingsStore{filePath: path}, nil
}

// Path returns the location of the backing file.
func (s *SettingsStore) Path() string {
	return s.filePath
}

// Load reads the settings file. A missing file yields the defaults;
// unset fields fall back to their default values.
func (s *SettingsStore) Load() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := domain.DefaultSettings()

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return domain.DefaultSettings(), fmt.Errorf("parsing settings: %w", err)
	}

	if settings.Output.FullFile == "" {
		settings.Output.FullFile = domain.DefaultSettings().Output.FullFile
	}
	if settings.Output.ShortFile == "" {
		settings.Output.ShortFile = domain.DefaultSettings().Output.ShortFile
	}

	return settings, nil
}

// Save writes the settings atomically: marshal to a temp file in the
// same directory, then rename over the target.
func (s *SettingsStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.filePath), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.filePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing settings file: %w", err)
	}
	return nil
}
