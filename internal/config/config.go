package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// NOTE: This file provides the configuration model and full YAML-based
// load/save behavior, including first-run config creation and 0600
// permissions.

// RangeConfig holds defaults for sequence generation.
type RangeConfig struct {
	// Periods is the default number of values to generate.
	Periods int `yaml:"periods" json:"periods"`
	// Step is the default fixed step, either a Go duration string
	// ("24h", "90m") or a bare integer meaning whole days ("7").
	Step string `yaml:"step" json:"step"`
}

// ICSConfig holds defaults for calendar export.
type ICSConfig struct {
	// Name becomes the exported calendar's display name.
	Name string `yaml:"name" json:"name"`
	// Summary is the SUMMARY given to every exported event.
	Summary string `yaml:"summary" json:"summary"`
}

// Config is the top-level tool configuration.
type Config struct {
	// DayFirst selects the day-first reading of ambiguous numeric
	// dates ("06-04-2001" -> day 6) for all free-form parsing.
	DayFirst bool `yaml:"day_first" json:"day_first"`

	// Formats is a list of explicit strftime-style formats tried, in
	// order, before falling back to free-form recognition.
	Formats []string `yaml:"formats" json:"formats"`

	// OutputFormat is the strftime-style format used to print
	// normalized values.
	OutputFormat string `yaml:"output_format" json:"output_format"`

	// Range holds sequence-generation defaults.
	Range RangeConfig `yaml:"range" json:"range"`

	// ICS holds calendar-export defaults.
	ICS ICSConfig `yaml:"ics" json:"ics"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		DayFirst:     false,
		Formats:      []string{},
		OutputFormat: "%Y-%m-%d %H:%M:%S",
		Range: RangeConfig{
			Periods: 7,
			Step:    "24h",
		},
		ICS: ICSConfig{
			Name:    "datenorm",
			Summary: "datenorm",
		},
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs (e.g., older versions) still behave correctly.
func (c *Config) Normalize() {
	if c.OutputFormat == "" {
		c.OutputFormat = "%Y-%m-%d %H:%M:%S"
	}
	if c.Formats == nil {
		c.Formats = []string{}
	}
	if c.Range.Periods <= 0 {
		c.Range.Periods = 7
	}
	if c.Range.Step == "" {
		c.Range.Step = "24h"
	}
	if c.ICS.Name == "" {
		c.ICS.Name = "datenorm"
	}
	if c.ICS.Summary == "" {
		c.ICS.Summary = "datenorm"
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist:
//   - create parent directory if needed
//   - write a default config with 0600 perms
//   - return the default config
//   - If the file exists:
//   - read YAML and unmarshal into Config
//   - normalize defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path.
//
// Implementation details:
//   - Ensures parent directory exists (0700).
//   - Marshals cfg to YAML.
//   - Writes atomically via a temp file + rename.
//   - Ensures final file permissions are 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	// Atomic write: write to temp file in same directory then rename.
	tmp, err := os.CreateTemp(dir, ".datenorm-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Ensure we clean up temp file on error.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	// Flush and close before chmod/rename.
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// Set permissions to 0600 on temp file before rename.
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	// Rename over the target path.
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	return nil
}

// Save is a convenience method on Config that delegates to the
// package-level Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
