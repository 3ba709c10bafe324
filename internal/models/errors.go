package models

import "github.com/ayoisaiah/ppm/internal/apperr"

var (
	ErrSessionAlreadyActive = &apperr.Error{
		Message: "a focus session is already active",
	}

	ErrNoActiveSession = &apperr.Error{
		Message: "no active focus session found",
	}

	ErrNotFound = &apperr.Error{
		Message: "%s not found",
	}

	ErrAlreadyExists = &apperr.Error{
		Message: "%s already exists",
	}

	ErrTaskClosed = &apperr.Error{
		Message: "task %s is already %s",
	}

	ErrInvalidDuration = &apperr.Error{
		Message: "focus duration must be greater than zero, got %v",
	}
)
