package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (STREAMTAP_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("watch-dir", os.Getenv("STREAMTAP_WATCH_DIR"), &cfg.WatchDir)
	s.setString("journal", os.Getenv("STREAMTAP_JOURNAL_PATH"), &cfg.JournalPath)
	s.setString("ops", os.Getenv("STREAMTAP_OPS"), &cfg.Ops)

	if err := s.setFloatFromString("max-event-rate", os.Getenv("STREAMTAP_MAX_EVENT_RATE"), &cfg.MaxEventRate); err != nil {
		return err
	}
	if err := s.setIntFromString("rate-burst", os.Getenv("STREAMTAP_RATE_BURST"), &cfg.RateBurst); err != nil {
		return err
	}

	s.setBoolFromString("quiet", os.Getenv("STREAMTAP_QUIET"), &cfg.Quiet)
	s.setBoolFromString("debug", os.Getenv("STREAMTAP_DEBUG"), &cfg.Debug)
	s.setBoolFromString("once", os.Getenv("STREAMTAP_ONCE"), &cfg.Once)

	return nil
}
