package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/ppm/internal/logging"
	"github.com/ayoisaiah/ppm/internal/pathutil"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyDefaultDuration      = "session.default_duration"
	keyStorageBackend       = "storage.backend"
	keyStorageSessions      = "storage.sessions"
	keyStorageTasks         = "storage.tasks"
	keyStorageProjects      = "storage.projects"
	keyStorageNotesDir      = "storage.notes_dir"
	keyStorageBolt          = "storage.bolt"
	keyEditor               = "editor"
	keyOutputPrefix         = "output.prefix"
	keyNotificationsEnabled = "notifications.enabled"
	keyLogLevel             = "log.level"
)

const envPrefix = "PPM"

// WithViperConfig returns an Option that loads configuration from Viper.
// A config file with the default settings is written if none exists.
// PPM_* environment variables override the file, e.g.
// PPM_SESSION_DEFAULT_DURATION=25m.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		setupViper(v, c)

		c.PathToConfig = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyDefaultDuration, DefaultFocusDuration.String())
	v.SetDefault(keyStorageBackend, BackendJSON)
	v.SetDefault(keyStorageSessions, pathutil.WithEnv("sessions.json"))
	v.SetDefault(keyStorageTasks, pathutil.WithEnv("tasks.json"))
	v.SetDefault(keyStorageProjects, pathutil.WithEnv("projects.json"))
	v.SetDefault(keyStorageNotesDir, pathutil.WithEnv("notes"))
	v.SetDefault(keyStorageBolt, pathutil.WithEnv("sessions.db"))
	v.SetDefault(keyEditor, "")
	v.SetDefault(keyOutputPrefix, DefaultOutputPrefix)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyLogLevel, logging.LevelInfo)

	// Values chosen in the first-run prompt end up in the written file.
	if c.Session.DefaultDuration != 0 {
		v.Set(keyDefaultDuration, c.Session.DefaultDuration.String())
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	d, err := parseDuration(v.GetString(keyDefaultDuration))
	if err != nil {
		return errInvalidDurationFormat.Fmt(keyDefaultDuration).Wrap(err)
	}

	// Bare numbers are minutes, which the duration decode hook rejects.
	v.Set(keyDefaultDuration, d.String())

	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
