package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/ayoisaiah/ppm/internal/models"
)

const noteExt = ".md"

// MarkdownNoteStore keeps one Markdown file per note in a directory. The
// file is named after the note id.
type MarkdownNoteStore struct {
	fs  afero.Fs
	dir string
}

func NewMarkdownNoteStore(fsys afero.Fs, dir string) *MarkdownNoteStore {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	return &MarkdownNoteStore{fs: fsys, dir: dir}
}

func (s *MarkdownNoteStore) path(id string) string {
	return filepath.Join(s.dir, id+noteExt)
}

// validID reports whether id names a file directly inside the notes
// directory.
func validID(id string) bool {
	return id != "" &&
		id != "." &&
		!strings.Contains(id, "..") &&
		!strings.ContainsAny(id, `/\`) &&
		filepath.Base(id) == id
}

func (s *MarkdownNoteStore) write(n *models.Note) error {
	err := afero.WriteFile(s.fs, s.path(n.ID), []byte(EncodeNote(n)), filePermission)
	if err != nil {
		return fmt.Errorf("writing note %s: %w", n.ID, err)
	}

	return nil
}

func (s *MarkdownNoteStore) Create(note models.Note) error {
	if !validID(note.ID) {
		return errMalformedNote.Fmt("invalid id " + note.ID)
	}

	if err := s.fs.MkdirAll(s.dir, dirPermission); err != nil {
		return fmt.Errorf("creating %s: %w", s.dir, err)
	}

	exists, err := afero.Exists(s.fs, s.path(note.ID))
	if err != nil {
		return err
	}

	if exists {
		return models.ErrAlreadyExists.Fmt("note " + note.ID)
	}

	return s.write(&note)
}

func (s *MarkdownNoteStore) Get(id string) (*models.Note, error) {
	if !validID(id) {
		return nil, models.ErrNotFound.Fmt("note " + id)
	}

	b, err := afero.ReadFile(s.fs, s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, models.ErrNotFound.Fmt("note " + id)
		}

		return nil, fmt.Errorf("reading note %s: %w", id, err)
	}

	return DecodeNote(string(b))
}

func (s *MarkdownNoteStore) UpdateContent(id, content string) error {
	n, err := s.Get(id)
	if err != nil {
		return err
	}

	n.Content = content

	return s.write(n)
}

// List skips files that cannot be decoded. They are only reported in the
// debug log.
func (s *MarkdownNoteStore) List() ([]models.Note, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Note{}, nil
		}

		return nil, fmt.Errorf("reading %s: %w", s.dir, err)
	}

	notes := make([]models.Note, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), noteExt) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())

		b, err := afero.ReadFile(s.fs, path)
		if err != nil {
			slog.Debug("skipping unreadable note", slog.String("path", path), slog.Any("error", err))
			continue
		}

		n, err := DecodeNote(string(b))
		if err != nil {
			slog.Debug("skipping malformed note", slog.String("path", path), slog.Any("error", err))
			continue
		}

		notes = append(notes, *n)
	}

	sortNotes(notes)

	return notes, nil
}

func (s *MarkdownNoteStore) ListByProject(project string) ([]models.Note, error) {
	notes, err := s.List()
	if err != nil {
		return nil, err
	}

	return filterNotes(notes, project), nil
}

func (s *MarkdownNoteStore) Delete(id string) error {
	if !validID(id) {
		return models.ErrNotFound.Fmt("note " + id)
	}

	err := s.fs.Remove(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.ErrNotFound.Fmt("note " + id)
		}

		return fmt.Errorf("deleting note %s: %w", id, err)
	}

	return nil
}

// sortNotes orders notes newest first.
func sortNotes(notes []models.Note) {
	slices.SortStableFunc(notes, func(a, b models.Note) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func filterNotes(notes []models.Note, project string) []models.Note {
	out := []models.Note{}

	for i := range notes {
		if notes[i].Project == project {
			out = append(out, notes[i])
		}
	}

	return out
}
