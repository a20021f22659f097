package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Inputs InputsConfig `toml:"inputs"`
	Fetch  FetchConfig  `toml:"fetch"`
	Match  MatchConfig  `toml:"match"`
	Report ReportConfig `toml:"report"`
}

type InputsConfig struct {
	FeedsPath    string `toml:"feeds_path"`
	FeedsFormat  string `toml:"feeds_format"`
	KeywordsPath string `toml:"keywords_path"`
}

type FetchConfig struct {
	Timeout       string `toml:"timeout"`
	MaxConcurrent int    `toml:"max_concurrent"`
	MaxItems      int    `toml:"max_items"`
	UserAgent     string `toml:"user_agent"`
}

type MatchConfig struct {
	IncludeDescription bool `toml:"include_description"`
}

type ReportConfig struct {
	Path    string `toml:"path"`
	Format  string `toml:"format"`
	Console bool   `toml:"console"`
}

// Feed list formats.
const (
	FeedsFormatLines = "lines"
	FeedsFormatOPML  = "opml"
)

// Report formats.
const (
	ReportFormatText = "text"
	ReportFormatRSS  = "rss"
)

// Default returns the configuration used when no config file is present. The
// input and report filenames match the fixed names the tool has always used.
func Default() *Config {
	cfg := &Config{
		Report: ReportConfig{Console: true},
	}
	fillDefaults(cfg)
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	config.Report.Console = true
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func fillDefaults(config *Config) {
	if config.Inputs.FeedsPath == "" {
		config.Inputs.FeedsPath = "rss_list.txt"
	}

	if config.Inputs.FeedsFormat == "" {
		config.Inputs.FeedsFormat = FeedsFormatLines
	}

	if config.Inputs.KeywordsPath == "" {
		config.Inputs.KeywordsPath = "mots_cles.txt"
	}

	if config.Fetch.Timeout == "" {
		config.Fetch.Timeout = "15s"
	}

	if config.Fetch.MaxConcurrent == 0 {
		config.Fetch.MaxConcurrent = 10
	}

	if config.Fetch.UserAgent == "" {
		config.Fetch.UserAgent = "feedscan/1.0"
	}

	if config.Report.Path == "" {
		config.Report.Path = "resultat.txt"
	}

	if config.Report.Format == "" {
		config.Report.Format = ReportFormatText
	}
}

func validateConfig(config *Config) error {
	fillDefaults(config)

	if config.Inputs.FeedsFormat != FeedsFormatLines && config.Inputs.FeedsFormat != FeedsFormatOPML {
		return fmt.Errorf("unknown feeds_format: %q", config.Inputs.FeedsFormat)
	}

	if _, err := time.ParseDuration(config.Fetch.Timeout); err != nil {
		return fmt.Errorf("invalid fetch timeout: %w", err)
	}

	if config.Fetch.MaxConcurrent < 1 {
		return fmt.Errorf("max_concurrent must be positive, got %d", config.Fetch.MaxConcurrent)
	}

	if config.Fetch.MaxItems < 0 {
		return fmt.Errorf("max_items must not be negative, got %d", config.Fetch.MaxItems)
	}

	if config.Report.Format != ReportFormatText && config.Report.Format != ReportFormatRSS {
		return fmt.Errorf("unknown report format: %q", config.Report.Format)
	}

	return nil
}

// FetchTimeout returns the parsed fetch timeout. Validation guarantees the
// duration parses.
func (c *Config) FetchTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Fetch.Timeout)
	return d
}
