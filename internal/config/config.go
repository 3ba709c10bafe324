// Package config loads ppm settings from the config file, the environment
// and command-line flags.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ayoisaiah/ppm/internal/output"
)

type (
	// Config holds all configuration settings
	Config struct {
		Editor        string             `mapstructure:"editor"        yaml:"editor"`
		PathToConfig  string             `mapstructure:"-"             yaml:"-"`
		Storage       StorageConfig      `mapstructure:"storage"       yaml:"storage"`
		Output        OutputConfig       `mapstructure:"output"        yaml:"output"`
		Log           LogConfig          `mapstructure:"log"           yaml:"log"`
		Session       SessionConfig      `mapstructure:"session"       yaml:"session"`
		Notifications NotificationConfig `mapstructure:"notifications" yaml:"notifications"`
	}

	// SessionConfig holds focus session settings
	SessionConfig struct {
		DefaultDuration time.Duration `mapstructure:"default_duration" yaml:"default_duration"`
	}

	// StorageConfig holds the location of every collection. Relative paths
	// are resolved against the data directory.
	StorageConfig struct {
		Backend  string `mapstructure:"backend"   yaml:"backend"`
		Sessions string `mapstructure:"sessions"  yaml:"sessions"`
		Tasks    string `mapstructure:"tasks"     yaml:"tasks"`
		Projects string `mapstructure:"projects"  yaml:"projects"`
		NotesDir string `mapstructure:"notes_dir" yaml:"notes_dir"`
		Bolt     string `mapstructure:"bolt"      yaml:"bolt"`
	}

	// OutputConfig holds console output settings
	OutputConfig struct {
		Prefix string `mapstructure:"prefix" yaml:"prefix"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	}

	// LogConfig holds log file settings
	LogConfig struct {
		Level string `mapstructure:"level" yaml:"level"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.1.0"

// Storage backends for focus sessions.
const (
	BackendJSON = "json"
	BackendBolt = "bolt"
)

const (
	DefaultFocusDuration = 60 * time.Minute
	DefaultOutputPrefix  = output.DefaultPrefix
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithDataDir returns an Option that resolves relative storage paths
// against dir.
func WithDataDir(dir string) Option {
	return func(c *Config) error {
		for _, p := range []*string{
			&c.Storage.Sessions,
			&c.Storage.Tasks,
			&c.Storage.Projects,
			&c.Storage.NotesDir,
			&c.Storage.Bolt,
		} {
			if *p != "" && !filepath.IsAbs(*p) {
				*p = filepath.Join(dir, *p)
			}
		}

		return nil
	}
}

// parseDuration accepts Go duration strings and bare numbers of minutes.
func parseDuration(s string) (time.Duration, error) {
	// Try parsing as duration string first
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	// Try parsing as minutes in case duration unit is absent
	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return mins, nil
}
