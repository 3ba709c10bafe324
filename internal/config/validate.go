package config

import (
	"time"

	"github.com/ayoisaiah/ppm/internal/logging"
)

var (
	// Minimum and maximum duration constraints.
	minSessionDuration = 1 * time.Minute
	maxSessionDuration = 720 * time.Minute // 12 hours
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateDuration(c.Session.DefaultDuration); err != nil {
		return err
	}

	if err := c.validateStorage(); err != nil {
		return err
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

func validateDuration(d time.Duration) error {
	if d < minSessionDuration || d > maxSessionDuration {
		return errInvalidDuration.Fmt(minSessionDuration, maxSessionDuration, d)
	}

	return nil
}

// validateStorage checks that the configured backend is known and that every
// collection it needs has a location.
func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case BackendJSON:
		if c.Storage.Sessions == "" {
			return errEmptyStoragePath.Fmt(keyStorageSessions)
		}
	case BackendBolt:
		if c.Storage.Bolt == "" {
			return errEmptyStoragePath.Fmt(keyStorageBolt)
		}
	default:
		return errUnknownBackend.Fmt(c.Storage.Backend)
	}

	required := map[string]string{
		keyStorageTasks:    c.Storage.Tasks,
		keyStorageProjects: c.Storage.Projects,
		keyStorageNotesDir: c.Storage.NotesDir,
	}

	for key, path := range required {
		if path == "" {
			return errEmptyStoragePath.Fmt(key)
		}
	}

	return nil
}
