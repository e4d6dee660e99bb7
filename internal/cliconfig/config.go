// Package cliconfig holds the CLI configuration for streamtap and the
// file/env/flag layering that produces it. Explicitly set flags win over
// environment variables, which win over the config file, which wins over
// defaults.
package cliconfig

import (
	"fmt"
	"strconv"
)

// Config holds CLI configuration for streamtap.
type Config struct {
	// WatchDir is the directory whose filesystem events are tapped.
	WatchDir string

	// JournalPath is the SQLite journal database. Empty disables journaling.
	JournalPath string

	// MaxEventRate caps forwarded events per second. Zero means unlimited.
	MaxEventRate float64

	// RateBurst is the burst budget used with MaxEventRate.
	RateBurst int

	// Ops restricts delivery to a comma-separated list of operations
	// (create, write, remove, rename, chmod). Empty delivers everything.
	Ops string

	// Quiet suppresses printing events to stdout.
	Quiet bool

	// Debug enables debug-level logging.
	Debug bool

	// Once exits after the stream terminates instead of waiting for a signal.
	Once bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		RateBurst: 10,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.WatchDir == "" {
		return fmt.Errorf("watch-dir is required")
	}
	if c.MaxEventRate < 0 {
		return fmt.Errorf("max event rate must not be negative")
	}
	if c.MaxEventRate > 0 && c.RateBurst <= 0 {
		return fmt.Errorf("rate burst must be positive when a rate cap is set")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
