package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultIntervalMS = 1000
	defaultRows       = 15
	minIntervalMS     = 100
)

// Config holds the user-tunable knobs: the refresh cadence and how many
// process rows to show.
type Config struct {
	IntervalMS int `json:"interval_ms"`
	Rows       int `json:"rows"`
}

// Interval is the sampling cadence, floored so a bad config value cannot spin
// the collect loop.
func (c *Config) Interval() time.Duration {
	ms := c.IntervalMS
	if ms < minIntervalMS {
		ms = defaultIntervalMS
	}
	return time.Duration(ms) * time.Millisecond
}

// Path is the location of the config file, ~/.wtop/config.json.
func Path() string {
	return filepath.Join(dir(), "config.json")
}

func dir() string {
	return filepath.Join(os.Getenv("HOME"), ".wtop")
}

// Load reads the config file, writing defaults on the first run or when the
// file is unreadable or malformed.
func Load() (*Config, error) {
	os.MkdirAll(dir(), 0755)
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		cfg := Default()
		_ = saveTo(path, cfg)
		return cfg, nil
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg := Default()
		_ = saveTo(path, cfg)
		return cfg, nil
	}

	if cfg.Rows < 1 {
		cfg.Rows = defaultRows
	}
	return &cfg, nil
}

// Save writes the config back to disk.
func Save(cfg *Config) error {
	return saveTo(Path(), cfg)
}

func saveTo(path string, cfg *Config) error {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	return os.WriteFile(path, data, 0644)
}

func Default() *Config {
	return &Config{
		IntervalMS: defaultIntervalMS,
		Rows:       defaultRows,
	}
}
