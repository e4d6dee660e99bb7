package cliconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				WatchDir:     "/srv/logs",
				JournalPath:  "/srv/journal.db",
				MaxEventRate: 25,
				RateBurst:    5,
				Ops:          "create,write",
				Quiet:        &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				WatchDir:     "/srv/logs",
				JournalPath:  "/srv/journal.db",
				MaxEventRate: 25,
				RateBurst:    5,
				Ops:          "create,write",
				Quiet:        true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				WatchDir:  "/from/file",
				RateBurst: 99,
			},
			changed: map[string]bool{"watch-dir": true},
			initial: Config{WatchDir: "/from/flag"},
			expected: Config{
				WatchDir:  "/from/flag",
				RateBurst: 99,
			},
		},
		{
			name:       "empty file config changes nothing",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    Config{WatchDir: "/keep", RateBurst: 10},
			expected:   Config{WatchDir: "/keep", RateBurst: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial

			if err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed); err != nil {
				t.Fatalf("ApplyFileConfig() error = %v", err)
			}
			if !reflect.DeepEqual(cfg, tt.expected) {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := strings.TrimSpace(`
watch_dir = "/srv/logs"
journal_path = "/srv/journal.db"
max_event_rate = 12.5
rate_burst = 3
ops = "write"
quiet = true
`)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.WatchDir != "/srv/logs" {
		t.Errorf("WatchDir = %q, want /srv/logs", fc.WatchDir)
	}
	if fc.MaxEventRate != 12.5 {
		t.Errorf("MaxEventRate = %v, want 12.5", fc.MaxEventRate)
	}
	if fc.RateBurst != 3 {
		t.Errorf("RateBurst = %d, want 3", fc.RateBurst)
	}
	if fc.Quiet == nil || !*fc.Quiet {
		t.Error("Quiet = nil or false, want true")
	}
}

func TestLoadFileConfig_Errors(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("watch_dir = ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if FileExists(path) {
		t.Error("FileExists = true for missing file")
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists = false for existing file")
	}
}
