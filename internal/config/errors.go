package config

import "github.com/ayoisaiah/ppm/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDurationFormat = &apperr.Error{
		Message: "%s is not a valid duration",
	}

	errInvalidDuration = &apperr.Error{
		Message: "focus duration must be between %v and %v, got %v",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend '%s' (must be json or bolt)",
	}

	errEmptyStoragePath = &apperr.Error{
		Message: "%s cannot be empty",
	}
)

// Exported for errors.Is checks by callers.
var (
	ErrConfigValidation = errConfigValidation
	ErrInvalidDuration  = errInvalidDuration
	ErrUnknownBackend   = errUnknownBackend
)
