package feed

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"
)

// ConfigCache holds the podcast subscriptions found in feedsDir, keyed by
// file name.
type ConfigCache struct {
	feedsDir string
	cache    map[string]*Config
	mu       sync.RWMutex
}

func NewConfigCache(feedsDir string) *ConfigCache {
	return &ConfigCache{
		feedsDir: feedsDir,
		cache:    make(map[string]*Config),
	}
}

func (cc *ConfigCache) Run() error {
	if _, err := os.Stat(cc.feedsDir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(cc.feedsDir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find YML files: %w", err)
	}

	for _, file := range files {
		podcastName := strings.TrimSuffix(filepath.Base(file), ".yml")

		config, err := cc.LoadConfig(podcastName)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}

		slog.Debug("Configuration loaded", "podcast", podcastName, "enabled", config.Settings.Enabled, "refresh_interval", config.Settings.RefreshInterval)
	}

	return nil
}

func (cc *ConfigCache) LoadConfig(podcastName string) (*Config, error) {
	configFile := cc.getConfigFilePath(podcastName)
	podcastConfig, err := cc.parseConfig(configFile)
	if err != nil {
		return nil, err
	}

	// Name comes from the file name
	podcastConfig.Name = podcastName

	if err := cc.validateConfig(podcastConfig); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	// Store in cache
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cache[podcastConfig.Name] = podcastConfig

	return podcastConfig, nil
}

func (cc *ConfigCache) GetConfig(podcastName string) (*Config, error) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	podcastConfig, ok := cc.cache[podcastName]
	if !ok {
		return nil, fmt.Errorf("podcast config with name '%s' not found", podcastName)
	}
	return podcastConfig, nil
}

func (cc *ConfigCache) GetConfigs() map[string]*Config {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	configsCopy := make(map[string]*Config, len(cc.cache))
	for k, v := range cc.cache {
		configsCopy[k] = v
	}
	return configsCopy
}

func (cc *ConfigCache) GetEnabledConfigs() map[string]*Config {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	enabledConfigs := make(map[string]*Config)
	for k, v := range cc.cache {
		if v.Settings.Enabled {
			enabledConfigs[k] = v
		}
	}
	return enabledConfigs
}

func (cc *ConfigCache) GetConfigCount() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.cache)
}

func (cc *ConfigCache) parseConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var podcastConfig Config
	if err := yaml.Unmarshal(data, &podcastConfig); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if podcastConfig.Settings.RefreshInterval == 0 {
		podcastConfig.Settings.RefreshInterval = 3600
	}
	if podcastConfig.Settings.MaxEpisodes == 0 {
		podcastConfig.Settings.MaxEpisodes = 100
	}
	if podcastConfig.Settings.Timeout == 0 {
		podcastConfig.Settings.Timeout = 30
	}

	return &podcastConfig, nil
}

func (cc *ConfigCache) validateConfig(podcastConfig *Config) error {
	if podcastConfig == nil {
		return fmt.Errorf("config is nil")
	}

	requiredFeedFields := map[string]string{
		"podcast name": podcastConfig.Name,
		"podcast URL":  podcastConfig.URL,
	}

	for fieldName, fieldValue := range requiredFeedFields {
		if fieldValue == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
	}

	nonNegativeFields := map[string]int{
		"refresh interval": podcastConfig.Settings.RefreshInterval,
		"max episodes":     podcastConfig.Settings.MaxEpisodes,
		"timeout":          podcastConfig.Settings.Timeout,
	}

	for fieldName, fieldValue := range nonNegativeFields {
		if fieldValue < 0 {
			return fmt.Errorf("%s must be non-negative", fieldName)
		}
	}

	if podcastConfig.Encoding != "" {
		if _, err := htmlindex.Get(podcastConfig.Encoding); err != nil {
			return fmt.Errorf("unsupported encoding %q", podcastConfig.Encoding)
		}
	}

	validFields := map[string]bool{
		"title":        true,
		"description":  true,
		"content":      true,
		"author":       true,
		"link":         true,
		"categories":   true,
		"keywords":     true,
		"episode_type": true,
	}

	for i, filter := range podcastConfig.Filters {
		if !validFields[filter.Field] {
			return fmt.Errorf("invalid filter field at index %d: %s", i, filter.Field)
		}
		if len(filter.Includes) == 0 && len(filter.Excludes) == 0 {
			return fmt.Errorf("filter at index %d must have at least one include or exclude rule", i)
		}
	}

	return nil
}

func (cc *ConfigCache) getConfigFilePath(podcastName string) string {
	return filepath.Join(cc.feedsDir, podcastName+".yml")
}
