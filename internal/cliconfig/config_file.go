package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML-friendly field types.
type FileConfig struct {
	WatchDir     string  `toml:"watch_dir"`
	JournalPath  string  `toml:"journal_path"`
	MaxEventRate float64 `toml:"max_event_rate"`
	RateBurst    int     `toml:"rate_burst"`
	Ops          string  `toml:"ops"`
	Quiet        *bool   `toml:"quiet"`
	Debug        *bool   `toml:"debug"`
	Once         *bool   `toml:"once"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.streamtap/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".streamtap", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("watch-dir", fc.WatchDir, &cfg.WatchDir)
	s.setString("journal", fc.JournalPath, &cfg.JournalPath)
	s.setString("ops", fc.Ops, &cfg.Ops)

	s.setFloat("max-event-rate", fc.MaxEventRate, &cfg.MaxEventRate)
	s.setInt("rate-burst", fc.RateBurst, &cfg.RateBurst)

	s.setBool("quiet", fc.Quiet, &cfg.Quiet)
	s.setBool("debug", fc.Debug, &cfg.Debug)
	s.setBool("once", fc.Once, &cfg.Once)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
