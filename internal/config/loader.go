package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the dotfile directory under ~/.config.
	ConfigDir = "sidekick"
	// ConfigFile is the file name inside ConfigDir.
	ConfigFile = "config.json"
)

// FileSystem is the filesystem seam the loader reads through, so tests can
// substitute in-memory files.
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader is the production FileSystem backed by the OS.
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader reads the dotfile through an injected FileSystem.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a Loader over the real filesystem.
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}}
}

// NewLoaderWithFS creates a Loader over the given filesystem.
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load merges ~/.config/sidekick/config.json over the defaults and
// validates the result. A missing file or home directory falls back to
// defaults; malformed JSON, unreadable files, and invalid values are errors.
//
// The dotfile is unmarshalled directly into the default config, so a key
// that is present wins even when its value is a zero value (0, false, "").
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	configPath := filepath.Join(homeDir, ".config", ConfigDir, ConfigFile)

	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads the config with the default loader.
func Load() (*Config, error) {
	return NewLoader().Load()
}
