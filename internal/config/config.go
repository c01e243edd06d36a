// Package config loads the application configuration from a YAML file,
// falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// DataDir holds the persisted snapshots (and the sqlite database
	// when that backend is selected).
	DataDir string `yaml:"data_dir" json:"data_dir"`

	// Storage selects the persistence backend: file, sqlite or memory.
	Storage string `yaml:"storage" json:"storage"`

	Reminder Reminder `yaml:"reminder" json:"reminder"`

	// Theme is the default theme used before a preference is saved.
	Theme string `yaml:"theme" json:"theme"`
}

type Reminder struct {
	// PollSeconds is how often the scheduler re-scans for due
	// reminders.
	PollSeconds int `yaml:"poll_seconds" json:"poll_seconds"`
}

func Default() Config {
	return Config{
		DataDir: "data",
		Storage: "file",
		Reminder: Reminder{
			PollSeconds: 30,
		},
		Theme: "dark",
	}
}

// Load reads the config at path. A missing file yields the defaults;
// a malformed or invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage {
	case "file", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	if c.DataDir == "" && c.Storage != "memory" {
		return fmt.Errorf("data_dir is required for the %s backend", c.Storage)
	}
	if c.Reminder.PollSeconds <= 0 {
		return fmt.Errorf("reminder poll_seconds must be positive, got %d", c.Reminder.PollSeconds)
	}
	if c.Theme != "dark" && c.Theme != "light" {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	return nil
}

// PollInterval returns the reminder poll cadence as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.Reminder.PollSeconds) * time.Second
}
