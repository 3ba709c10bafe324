package store

import (
	"log/slog"
	"time"

	"github.com/spf13/afero"

	"github.com/ayoisaiah/ppm/internal/models"
)

// JSONSessionStore keeps all sessions in one JSON array file.
type JSONSessionStore struct {
	file jsonFile[models.FocusSession]
}

// NewJSONSessionStore returns a store backed by the file at path on fsys.
// A nil fsys means the operating system's filesystem.
func NewJSONSessionStore(fsys afero.Fs, path string) *JSONSessionStore {
	return &JSONSessionStore{
		file: newJSONFile[models.FocusSession](fsys, path),
	}
}

func (s *JSONSessionStore) ActiveSession(
	now time.Time,
) (*models.FocusSession, error) {
	sessions, err := s.file.load()
	if err != nil {
		return nil, err
	}

	return firstActive(sessions, now), nil
}

func (s *JSONSessionStore) Create(sess models.FocusSession) error {
	sessions, err := s.file.load()
	if err != nil {
		return err
	}

	sessions = append(sessions, sess)

	return s.file.save(sessions)
}

func (s *JSONSessionStore) End(id string, now time.Time) error {
	sessions, err := s.file.load()
	if err != nil {
		return err
	}

	i := findSession(sessions, id)
	if i < 0 {
		return models.ErrNoActiveSession
	}

	sessions[i].End = now

	slog.Debug("session end rewritten", slog.String("id", id), slog.Time("end", now))

	return s.file.save(sessions)
}

func (s *JSONSessionStore) Delete(id string) error {
	sessions, err := s.file.load()
	if err != nil {
		return err
	}

	i := findSession(sessions, id)
	if i < 0 {
		return models.ErrNoActiveSession
	}

	sessions = append(sessions[:i], sessions[i+1:]...)

	return s.file.save(sessions)
}

func (s *JSONSessionStore) List() ([]models.FocusSession, error) {
	return s.file.load()
}
