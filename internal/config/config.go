package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	datemask "github.com/reoring/datemask"
)

// Config holds the CLI settings. Sources are applied in order: defaults, the
// YAML file, a .env file, the environment and finally command-line flags.
type Config struct {
	// Format is "mdy" or "dmy". ENV: DATEMASK_FORMAT
	Format string `yaml:"format" env:"DATEMASK_FORMAT"`
	// StartYear and EndYear bound 4-digit years. ENV: DATEMASK_START_YEAR, DATEMASK_END_YEAR
	StartYear int `yaml:"start_year" env:"DATEMASK_START_YEAR"`
	EndYear   int `yaml:"end_year" env:"DATEMASK_END_YEAR"`
	// Lang selects advisory messages ("en" or "ja"). ENV: DATEMASK_LANG
	Lang string `yaml:"lang" env:"DATEMASK_LANG"`
	// Output is "text", "json" or "yaml". ENV: DATEMASK_OUTPUT
	Output string `yaml:"output" env:"DATEMASK_OUTPUT"`
	// Debounce is the idle time before the watch command finalizes. ENV: DATEMASK_DEBOUNCE
	Debounce time.Duration `yaml:"debounce" env:"DATEMASK_DEBOUNCE"`
	// MessageTTL is how long an advisory message stays visible. ENV: DATEMASK_MESSAGE_TTL
	MessageTTL time.Duration `yaml:"message_ttl" env:"DATEMASK_MESSAGE_TTL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:     datemask.MDY.String(),
		StartYear:  datemask.DefaultStartYear,
		EndYear:    datemask.DefaultEndYear,
		Lang:       "en",
		Output:     "text",
		Debounce:   800 * time.Millisecond,
		MessageTTL: 3 * time.Second,
	}
}

// Load reads path (optional), then .env in the working directory (optional)
// and the DATEMASK_* environment on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}

// Parser converts the settings into a parser configuration.
func (c Config) Parser() (datemask.Config, error) {
	f, err := datemask.ParseFormat(c.Format)
	if err != nil {
		return datemask.Config{}, err
	}
	pc := datemask.Config{Format: f, StartYear: c.StartYear, EndYear: c.EndYear}
	if err := pc.Validate(); err != nil {
		return datemask.Config{}, err
	}
	return pc, nil
}

// Validate checks the settings that are not parser settings.
func (c Config) Validate() error {
	if _, err := c.Parser(); err != nil {
		return err
	}
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output %q (want text, json or yaml)", c.Output)
	}
	switch c.Lang {
	case "en", "ja":
	default:
		return fmt.Errorf("unknown lang %q (want en or ja)", c.Lang)
	}
	if c.Debounce < 0 || c.MessageTTL < 0 {
		return errors.New("debounce and message_ttl must not be negative")
	}
	return nil
}
