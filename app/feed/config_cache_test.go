package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigCacheLoadValidConfig(t *testing.T) {
	tempDir := t.TempDir()

	writeConfig(t, tempDir, "comb-talk.yml", `
url: "https://example.com/podcast.xml"
encoding: "windows-1252"

settings:
  enabled: true
  refresh_interval: 1800
  max_episodes: 25
  timeout: 15
  extract_notes: true

filters:
  - field: "title"
    includes:
      - "interview"
    excludes:
      - "sponsored"
`)

	configCache := NewConfigCache(tempDir)
	if err := configCache.Run(); err != nil {
		t.Fatal(err)
	}

	if configCache.GetConfigCount() != 1 {
		t.Errorf("Expected 1 config, got %d", configCache.GetConfigCount())
	}

	podcastConfig, err := configCache.GetConfig("comb-talk")
	if err != nil {
		t.Fatal(err)
	}

	if podcastConfig.Name != "comb-talk" {
		t.Errorf("Expected name 'comb-talk', got '%s'", podcastConfig.Name)
	}
	if podcastConfig.URL != "https://example.com/podcast.xml" {
		t.Errorf("Expected URL 'https://example.com/podcast.xml', got '%s'", podcastConfig.URL)
	}
	if podcastConfig.Encoding != "windows-1252" {
		t.Errorf("Expected encoding 'windows-1252', got '%s'", podcastConfig.Encoding)
	}
	if time.Duration(podcastConfig.Settings.RefreshInterval)*time.Second != 30*time.Minute {
		t.Errorf("Expected refresh interval 30m, got %v", time.Duration(podcastConfig.Settings.RefreshInterval)*time.Second)
	}
	if podcastConfig.Settings.MaxEpisodes != 25 {
		t.Errorf("Expected max episodes 25, got %d", podcastConfig.Settings.MaxEpisodes)
	}
	if !podcastConfig.Settings.ExtractNotes {
		t.Error("Expected extract_notes to be enabled")
	}
	if len(podcastConfig.Filters) != 1 {
		t.Errorf("Expected 1 filter, got %d", len(podcastConfig.Filters))
	}
}

func TestConfigCacheLoadConfigWithDefaults(t *testing.T) {
	tempDir := t.TempDir()

	writeConfig(t, tempDir, "test.yml", `
url: "https://example.com/podcast.xml"

settings:
  enabled: true
`)

	configCache := NewConfigCache(tempDir)
	if err := configCache.Run(); err != nil {
		t.Fatal(err)
	}

	podcastConfig, err := configCache.GetConfig("test")
	if err != nil {
		t.Fatal(err)
	}

	if podcastConfig.Settings.RefreshInterval != 3600 {
		t.Errorf("Expected default refresh interval 3600, got %d", podcastConfig.Settings.RefreshInterval)
	}
	if podcastConfig.Settings.MaxEpisodes != 100 {
		t.Errorf("Expected default max episodes 100, got %d", podcastConfig.Settings.MaxEpisodes)
	}
	if podcastConfig.Settings.Timeout != 30 {
		t.Errorf("Expected default timeout 30, got %d", podcastConfig.Settings.Timeout)
	}
	if podcastConfig.Encoding != "" {
		t.Errorf("Expected no encoding override, got '%s'", podcastConfig.Encoding)
	}
}

func TestConfigCacheInvalidConfig(t *testing.T) {
	tempDir := t.TempDir()

	writeConfig(t, tempDir, "invalid.yml", `
settings:
  enabled: true
`)

	configCache := NewConfigCache(tempDir)
	if err := configCache.Run(); err == nil {
		t.Error("Expected error for config without URL")
	}
}

func TestConfigCacheMissingDirectory(t *testing.T) {
	configCache := NewConfigCache(filepath.Join(t.TempDir(), "missing"))
	if err := configCache.Run(); err != nil {
		t.Fatal(err)
	}

	if configCache.GetConfigCount() != 0 {
		t.Errorf("Expected 0 configs, got %d", configCache.GetConfigCount())
	}
}

func TestConfigCacheReloadConfig(t *testing.T) {
	tempDir := t.TempDir()

	configFile := writeConfig(t, tempDir, "test.yml", `
url: "https://example.com/podcast.xml"
settings:
  enabled: true
`)

	configCache := NewConfigCache(tempDir)
	if err := configCache.Run(); err != nil {
		t.Fatal(err)
	}

	writeConfig(t, tempDir, "test.yml", `
url: "https://example.com/new-podcast.xml"
settings:
  enabled: true
  max_episodes: 50
`)

	reloadedConfig, err := configCache.LoadConfig("test")
	if err != nil {
		t.Fatal(err)
	}
	if reloadedConfig.URL != "https://example.com/new-podcast.xml" {
		t.Errorf("Expected updated URL, got '%s'", reloadedConfig.URL)
	}
	if reloadedConfig.Settings.MaxEpisodes != 50 {
		t.Errorf("Expected updated max_episodes 50, got %d", reloadedConfig.Settings.MaxEpisodes)
	}

	cached, err := configCache.GetConfig("test")
	if err != nil {
		t.Fatal(err)
	}
	if cached.URL != reloadedConfig.URL {
		t.Errorf("Expected cache to hold reloaded config, got '%s'", cached.URL)
	}

	if _, err := configCache.LoadConfig("nonexistent"); err == nil {
		t.Error("Expected error for non-existent config")
	}

	if err := os.WriteFile(configFile, []byte(`invalid yaml content`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := configCache.LoadConfig("test"); err == nil {
		t.Error("Expected error for invalid config file")
	}
}

func TestConfigCacheGetConfigs(t *testing.T) {
	tempDir := t.TempDir()

	writeConfig(t, tempDir, "first.yml", `
url: "https://example.com/first.xml"
settings:
  enabled: true
`)
	writeConfig(t, tempDir, "second.yml", `
url: "https://example.com/second.xml"
settings:
  enabled: false
`)

	configCache := NewConfigCache(tempDir)
	if err := configCache.Run(); err != nil {
		t.Fatal(err)
	}

	allConfigs := configCache.GetConfigs()
	if len(allConfigs) != 2 {
		t.Errorf("Expected 2 configs, got %d", len(allConfigs))
	}

	delete(allConfigs, "first")
	if configCache.GetConfigCount() != 2 {
		t.Error("Modifying returned configs map affected the cache")
	}

	enabled := configCache.GetEnabledConfigs()
	if len(enabled) != 1 || enabled["first"] == nil {
		t.Errorf("Expected only 'first' to be enabled, got %v", enabled)
	}

	_, err := configCache.GetConfig("missing")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not found error, got: %v", err)
	}
	if _, err := configCache.GetConfig("FIRST"); err == nil {
		t.Error("Expected names to be case sensitive")
	}
}

func TestConfigCacheValidateConfig(t *testing.T) {
	configCache := NewConfigCache("")

	if err := configCache.validateConfig(nil); err == nil {
		t.Error("Expected error for nil config")
	}

	valid := func() *Config {
		return &Config{
			Name: "test",
			URL:  "https://example.com/podcast.xml",
			Settings: ConfigSettings{
				RefreshInterval: 3600,
				MaxEpisodes:     100,
				Timeout:         30,
			},
		}
	}

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty name", func(c *Config) { c.Name = "" }},
		{"empty URL", func(c *Config) { c.URL = "" }},
		{"negative refresh interval", func(c *Config) { c.Settings.RefreshInterval = -1 }},
		{"negative max episodes", func(c *Config) { c.Settings.MaxEpisodes = -1 }},
		{"negative timeout", func(c *Config) { c.Settings.Timeout = -1 }},
		{"unknown encoding", func(c *Config) { c.Encoding = "klingon-8" }},
		{"invalid filter field", func(c *Config) {
			c.Filters = []ConfigFilter{{Field: "invalid_field", Includes: []string{"x"}}}
		}},
		{"empty filter", func(c *Config) {
			c.Filters = []ConfigFilter{{Field: "title"}}
		}},
	}

	for _, tt := range tests {
		c := valid()
		tt.modify(c)
		if err := configCache.validateConfig(c); err == nil {
			t.Errorf("Expected error for %s, got none", tt.name)
		}
	}

	c := valid()
	c.Encoding = "iso-8859-1"
	if err := configCache.validateConfig(c); err != nil {
		t.Errorf("Expected no error for valid config, got: %v", err)
	}
}

func TestConfigCacheValidFilterFields(t *testing.T) {
	configCache := NewConfigCache("")

	podcastConfig := &Config{
		Name: "test",
		URL:  "https://example.com/podcast.xml",
	}

	for _, field := range []string{"title", "description", "content", "author", "link", "categories", "keywords", "episode_type"} {
		podcastConfig.Filters = []ConfigFilter{{Field: field, Includes: []string{"test"}}}
		if err := configCache.validateConfig(podcastConfig); err != nil {
			t.Errorf("Expected no error for filter field '%s', got: %v", field, err)
		}
	}
}
