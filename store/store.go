// Package store persists ppm entities. Every repository exclusively owns its
// backing file or directory.
package store

import (
	"time"

	"github.com/ayoisaiah/ppm/internal/apperr"
	"github.com/ayoisaiah/ppm/internal/models"
)

var (
	errMalformedStore = &apperr.Error{
		Message: "malformed data in %s",
	}

	errStoreLocked = &apperr.Error{
		Message: "%s is locked: is another ppm process running?",
	}

	errMalformedNote = &apperr.Error{
		Message: "malformed note: %s",
	}
)

// Exported for errors.Is checks by callers.
var (
	ErrMalformedStore = errMalformedStore
	ErrStoreLocked    = errStoreLocked
	ErrMalformedNote  = errMalformedNote
)

// SessionRepository stores focus sessions. It does not validate overlaps;
// keeping at most one session active is the caller's job.
type SessionRepository interface {
	// ActiveSession returns the first stored session whose window contains
	// now, or nil if there is none. If more than one session matches, only
	// the first one found is returned.
	ActiveSession(now time.Time) (*models.FocusSession, error)
	// Create appends a session.
	Create(sess models.FocusSession) error
	// End rewrites the end of the identified session to now.
	End(id string, now time.Time) error
	// Delete removes the identified session.
	Delete(id string) error
	// List returns every session in storage order.
	List() ([]models.FocusSession, error)
}

// NoteRepository stores notes.
type NoteRepository interface {
	Create(note models.Note) error
	Get(id string) (*models.Note, error)
	UpdateContent(id, content string) error
	// List returns all readable notes, newest first.
	List() ([]models.Note, error)
	ListByProject(project string) ([]models.Note, error)
	Delete(id string) error
}

// TaskRepository stores tasks.
type TaskRepository interface {
	Create(task models.Task) error
	Get(id string) (*models.Task, error)
	UpdateStatus(id string, status models.TaskStatus) error
	List() ([]models.Task, error)
	ListByProject(project string) ([]models.Task, error)
	Delete(id string) error
}

// ProjectRepository stores projects keyed by name.
type ProjectRepository interface {
	Create(project models.Project) error
	Get(name string) (*models.Project, error)
	UpdateStatus(name string, status models.ProjectStatus) error
	List() ([]models.Project, error)
	Delete(name string) error
}

func findSession(sessions []models.FocusSession, id string) int {
	for i := range sessions {
		if sessions[i].ID == id {
			return i
		}
	}

	return -1
}

func firstActive(
	sessions []models.FocusSession,
	now time.Time,
) *models.FocusSession {
	for i := range sessions {
		if sessions[i].IsActive(now) {
			sess := sessions[i]
			return &sess
		}
	}

	return nil
}
