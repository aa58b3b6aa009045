// =============================================================================
// Greek CSV Viewer - Configuration Module
// =============================================================================
//
// This module is responsible for loading and validating the application
// configuration. Configuration is read from a single YAML file; every option
// has a default, so the viewer runs without any file at all.
//
// CONFIGURATION FILE (config.yaml):
//   listen_addr:  ":8080"
//   static_dir:   "./public"
//   source_url:   ""            # empty: read data.csv from static_dir
//   log_level:    "info"
//   load_timeout: "0s"          # 0 disables the timeout
//   rate_limit:   20            # negative disables, 0 means default
//   rate_burst:   40
//   columns:
//     vat:      "Α.Φ.Μ"
//     supplier: "Κωδ.Προμηθευτή"
//     year:     "Έτος"
//     excluded: "Φορέας"
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config path used when --config is not given.
// A missing default file is not an error.
const DefaultConfigFile = "config.yaml"

// DataFile is the fixed name of the CSV resource, served at "/" + DataFile.
const DataFile = "data.csv"

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the global application configuration.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	// Default: ":8080"
	ListenAddr string `yaml:"listen_addr"`

	// StaticDir is the directory holding the static data.csv asset.
	// Default: "./public"
	StaticDir string `yaml:"static_dir"`

	// SourceURL, when set, makes the loader fetch <SourceURL>/data.csv over
	// HTTP instead of reading it from StaticDir.
	SourceURL string `yaml:"source_url"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LoadTimeout bounds the one-shot load. Zero means no timeout.
	LoadTimeout time.Duration `yaml:"load_timeout"`

	// RateLimit is the sustained number of requests per second accepted by
	// the web server. A negative value disables rate limiting; zero is
	// treated as unset.
	// Default: 20
	RateLimit float64 `yaml:"rate_limit"`

	// RateBurst is the token bucket size.
	// Default: 40
	RateBurst int `yaml:"rate_burst"`

	// Columns names the CSV columns the view filters on and hides.
	Columns Columns `yaml:"columns"`
}

// Columns holds the header names used as join keys between the CSV header
// and the filter logic. They must match the decoded header exactly,
// including any whitespace.
type Columns struct {
	Vat      string `yaml:"vat"`
	Supplier string `yaml:"supplier"`
	Year     string `yaml:"year"`
	Excluded string `yaml:"excluded"`
}

// DefaultColumns returns the Greek column labels of the source dataset.
func DefaultColumns() Columns {
	return Columns{
		Vat:      "Α.Φ.Μ",
		Supplier: "Κωδ.Προμηθευτή",
		Year:     "Έτος",
		Excluded: "Φορέας",
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration file at configPath.
//
// PARAMETERS:
//   - configPath: The path to the YAML file. An empty path returns defaults.
//
// RETURNS:
//   - A pointer to the Config struct with defaults applied.
//   - An error if the file cannot be read, parsed or validated.
//
// A missing file is only tolerated for DefaultConfigFile; an explicitly
// requested file that does not exist is an error.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && configPath == DefaultConfigFile {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration bytes, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "./public"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = 20
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = 40
	}

	// Column names are not trimmed: they are compared verbatim with the
	// decoded header.
	def := DefaultColumns()
	if cfg.Columns.Vat == "" {
		cfg.Columns.Vat = def.Vat
	}
	if cfg.Columns.Supplier == "" {
		cfg.Columns.Supplier = def.Supplier
	}
	if cfg.Columns.Year == "" {
		cfg.Columns.Year = def.Year
	}
	if cfg.Columns.Excluded == "" {
		cfg.Columns.Excluded = def.Excluded
	}
}

// validate checks values that defaults cannot repair.
func validate(cfg *Config) error {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	if cfg.LoadTimeout < 0 {
		return fmt.Errorf("load_timeout must not be negative")
	}

	if cfg.RateLimit > 0 && cfg.RateBurst < 1 {
		return fmt.Errorf("rate_burst must be at least 1 when rate_limit is set")
	}

	if cfg.SourceURL != "" &&
		!strings.HasPrefix(cfg.SourceURL, "http://") &&
		!strings.HasPrefix(cfg.SourceURL, "https://") {
		return fmt.Errorf("source_url must be an http(s) URL, got %q", cfg.SourceURL)
	}

	return nil
}
