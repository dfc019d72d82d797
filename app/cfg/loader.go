package cfg

import (
	"cmp"
	"fmt"
	"log/slog"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Storage
	DBPath string `long:"db-path" env:"DB_PATH" default:"./data/podcast-comb.db" description:"SQLite database file"`

	// Application configuration
	FeedsDir          string  `long:"feeds-dir" env:"FEEDS_DIR" default:"./feeds" description:"Directory containing podcast configuration files"`
	Port              string  `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	WorkerCount       int     `long:"worker-count" env:"WORKER_COUNT" default:"5" description:"Number of background workers for podcast processing"`
	SchedulerInterval int     `long:"scheduler-interval" env:"SCHEDULER_INTERVAL" default:"30" description:"Scheduler interval in seconds"`
	APIAccessKey      string  `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`
	CacheTTL          int     `long:"cache-ttl" env:"CACHE_TTL" default:"300" description:"Seconds a live-parsed podcast is served from memory (0 disables)"`
	ParseRate         float64 `long:"parse-rate" env:"PARSE_RATE" default:"1" description:"Requests per second allowed on the parse endpoint (0 is unlimited)"`

	// One-shot parsing
	Parse    string `long:"parse" description:"Parse a single feed (URL, file:// URL or path), print it and exit"`
	Encoding string `long:"encoding" description:"Character encoding that overrides the document declaration when parsing a single feed"`
	Format   string `long:"format" default:"yaml" choice:"yaml" choice:"json" description:"Output format when parsing a single feed"`
	Notes    bool   `long:"notes" description:"Include plain text show notes when parsing a single feed"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Podcast Comb/1.0" description:"User agent string for HTTP requests"`
	Timeout   int    `long:"timeout" env:"HTTP_TIMEOUT" default:"30" description:"HTTP timeout in seconds for fetching feeds"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	return load(nil)
}

func load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	var err error
	if args == nil {
		_, err = parser.Parse()
	} else {
		_, err = parser.ParseArgs(args)
	}
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBPath:            raw.DBPath,
		FeedsDir:          raw.FeedsDir,
		Port:              raw.Port,
		WorkerCount:       raw.WorkerCount,
		SchedulerInterval: raw.SchedulerInterval,
		APIAccessKey:      raw.APIAccessKey,
		CacheTTL:          raw.CacheTTL,
		ParseRate:         raw.ParseRate,
		Parse:             raw.Parse,
		Encoding:          raw.Encoding,
		Format:            raw.Format,
		Notes:             raw.Notes,
		UserAgent:         raw.UserAgent,
		Timeout:           raw.Timeout,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("worker count must be at least 1, got %d", cfg.WorkerCount)
	}
	if cfg.SchedulerInterval < 1 {
		return nil, fmt.Errorf("scheduler interval must be at least 1 second, got %d", cfg.SchedulerInterval)
	}

	if cfg.CacheTTL < 0 || cfg.ParseRate < 0 {
		return nil, fmt.Errorf("cache TTL and parse rate must be non-negative")
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		slog.Warn("Invalid timezone, using system default", "timezone", cfg.Timezone, "error", err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return err
		}
		time.Local = loc
		slog.Debug("Timezone configured", "timezone", timezone)
	}
	return nil
}
