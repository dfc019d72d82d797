package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		t.Logf("Version: %s", version)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TZ", "UTC")

	cfg, err := load([]string{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.DBPath != "./data/podcast-comb.db" {
		t.Errorf("Expected default DB path, got '%s'", cfg.DBPath)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.WorkerCount != 5 {
		t.Errorf("Expected worker count 5, got %d", cfg.WorkerCount)
	}
	if cfg.CacheTTL != 300 || cfg.ParseRate != 1 {
		t.Errorf("Expected cache TTL 300 and parse rate 1, got %d and %v", cfg.CacheTTL, cfg.ParseRate)
	}
	if cfg.Format != "yaml" {
		t.Errorf("Expected format 'yaml', got '%s'", cfg.Format)
	}
	if cfg.ParseOnly() {
		t.Error("Expected server mode by default")
	}
	if Get() != cfg {
		t.Error("Expected Get to return the loaded configuration")
	}
}

func TestLoadParseMode(t *testing.T) {
	cfg, err := load([]string{"--parse", "https://example.com/feed.xml", "--format", "json", "--notes", "--debug"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !cfg.ParseOnly() {
		t.Error("Expected parse mode")
	}
	if cfg.Parse != "https://example.com/feed.xml" {
		t.Errorf("Expected parse location, got '%s'", cfg.Parse)
	}
	if cfg.Format != "json" || !cfg.Notes || !cfg.Debug {
		t.Errorf("Expected json output with notes and debug, got: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := [][]string{
		{"--format", "xml"},
		{"--worker-count", "0"},
		{"--scheduler-interval", "0"},
		{"--cache-ttl", "-1"},
		{"--unknown-flag"},
	}

	for _, args := range tests {
		if _, err := load(args); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}
}

func TestApplyTimezone(t *testing.T) {
	if err := applyTimezone("Not/AZone"); err == nil {
		t.Error("Expected error for invalid timezone")
	}
	if err := applyTimezone(""); err != nil {
		t.Errorf("Expected empty timezone to be ignored, got: %v", err)
	}
}
