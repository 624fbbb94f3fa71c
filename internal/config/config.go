package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned by LoadLocal and LoadGlobal when no file exists.
var ErrNoConfig = errors.New("no config")

// FileConfig is the on-disk YAML configuration shape. Nil fields were not
// set and fall through to the next source.
type FileConfig struct {
	Threads       *int    `yaml:"threads" json:"threads"`
	StrictVersion *bool   `yaml:"strict_version" json:"strict-version"`
	LogLevel      *string `yaml:"log_level" json:"log-level"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a book-local config file in root.
// It supports .flavord.yml/.yaml and flavord.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".flavord.yml", ".flavord.yaml", "flavord.yml", "flavord.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, ErrNoConfig
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, ErrNoConfig
	}
	p := filepath.Join(base, "flavord", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, ErrNoConfig
}

// FromBookTable decodes the [preprocessor.<name>] table of book.toml, which
// the host forwards as JSON with kebab-case keys. Keys it does not know,
// such as "command" or "renderers", are ignored.
func FromBookTable(raw json.RawMessage) (FileConfig, error) {
	var cfg FileConfig
	if len(raw) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse book.toml preprocessor table: %w", err)
	}
	return cfg, nil
}

// GetThreads returns the thread count or 0 when unset.
func (fc FileConfig) GetThreads() int {
	if fc.Threads == nil {
		return 0
	}
	return *fc.Threads
}

// IsStrictVersion reports whether a host version mismatch should abort
// the run (default: false, only warn).
func (fc FileConfig) IsStrictVersion() bool {
	if fc.StrictVersion == nil {
		return false
	}
	return *fc.StrictVersion
}

// GetLogLevel returns the configured level or empty string.
func (fc FileConfig) GetLogLevel() string {
	if fc.LogLevel == nil {
		return ""
	}
	return *fc.LogLevel
}
