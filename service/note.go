package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ayoisaiah/ppm/internal/clock"
	"github.com/ayoisaiah/ppm/internal/editor"
	"github.com/ayoisaiah/ppm/internal/models"
	"github.com/ayoisaiah/ppm/internal/output"
	"github.com/ayoisaiah/ppm/store"
)

const (
	noteTemplateBody = "# Write your note here\n\n"
	notePreviewLen   = 50
)

// CreateNote records a note. The body comes from Content when set and from
// the editor otherwise.
type CreateNote struct {
	Clock    clock.Clock
	Notes    store.NoteRepository
	Sessions store.SessionRepository
	Out      output.Writer
	Editor   editor.Editor
	// Project defaults to the project of the active session.
	Project string
	Content string
}

func (s *CreateNote) Run() error {
	now := s.Clock.Now()

	project := s.Project
	if project == "" {
		active, err := s.Sessions.ActiveSession(now)
		if err != nil {
			return err
		}

		if active != nil {
			project = active.Project
		}
	}

	note := models.Note{
		ID:        models.NewID(models.NotePrefix),
		CreatedAt: now,
		Project:   project,
	}

	content := strings.TrimSpace(s.Content)

	if content == "" {
		template := note
		template.Content = noteTemplateBody

		edited, ok, err := s.Editor.Open(store.EncodeNote(&template))
		if err != nil {
			return err
		}

		if ok {
			content = store.ExtractBody(edited)
		}
	}

	if content == "" {
		return s.Out.WriteLine("Note creation cancelled (no content provided)")
	}

	note.Content = content

	if err := s.Notes.Create(note); err != nil {
		return err
	}

	slog.Info(
		"note created",
		slog.String("id", note.ID),
		slog.String("project", note.Project),
	)

	if project == "" {
		return s.Out.WriteLine("Note created")
	}

	return s.Out.WriteLine(fmt.Sprintf("Note created for project '%s'", project))
}

// ListNotes prints a one-line preview of each note, newest first.
type ListNotes struct {
	Notes   store.NoteRepository
	Out     output.Writer
	Project string
	Limit   int
}

func (s *ListNotes) Run() error {
	var (
		notes []models.Note
		err   error
	)

	if s.Project != "" {
		notes, err = s.Notes.ListByProject(s.Project)
	} else {
		notes, err = s.Notes.List()
	}

	if err != nil {
		return err
	}

	if s.Limit > 0 && len(notes) > s.Limit {
		notes = notes[:s.Limit]
	}

	if len(notes) == 0 {
		return s.Out.WriteLine("No notes found")
	}

	lines := make([]string, 0, len(notes)+1)
	lines = append(lines, fmt.Sprintf("%d note(s) found:", len(notes)))

	for i := range notes {
		n := &notes[i]

		var project string
		if n.Project != "" {
			project = " (" + n.Project + ")"
		}

		lines = append(
			lines,
			fmt.Sprintf("  %s - %s%s", n.ID, preview(n.Content), project),
		)
	}

	return writeLines(s.Out, lines...)
}

// preview shortens content to its first notePreviewLen characters.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= notePreviewLen {
		return content
	}

	return string(runes[:notePreviewLen]) + "..."
}

// ShowNote prints a note in its stored Markdown form.
type ShowNote struct {
	Notes store.NoteRepository
	Out   output.Writer
	ID    string
}

func (s *ShowNote) Run() error {
	n, err := s.Notes.Get(s.ID)
	if err != nil {
		return err
	}

	return writeLines(s.Out, strings.Split(store.EncodeNote(n), "\n")...)
}

// EditNote opens the body of a note in the editor and saves the result.
type EditNote struct {
	Notes  store.NoteRepository
	Out    output.Writer
	Editor editor.Editor
	ID     string
}

func (s *EditNote) Run() error {
	n, err := s.Notes.Get(s.ID)
	if err != nil {
		return err
	}

	edited, ok, err := s.Editor.Open(n.Content)
	if err != nil {
		return err
	}

	// The editor only sees the body, so horizontal rules in it are content.
	content := strings.TrimSpace(edited)
	if !ok || content == "" {
		return s.Out.WriteLine("Note unchanged (no content provided)")
	}

	if content == n.Content {
		return s.Out.WriteLine("Note unchanged")
	}

	if err = s.Notes.UpdateContent(n.ID, content); err != nil {
		return err
	}

	slog.Info("note updated", slog.String("id", n.ID))

	return s.Out.WriteLine(fmt.Sprintf("Note %s updated", n.ID))
}

// DeleteNote removes a note.
type DeleteNote struct {
	Notes store.NoteRepository
	Out   output.Writer
	ID    string
}

func (s *DeleteNote) Run() error {
	if err := s.Notes.Delete(s.ID); err != nil {
		return err
	}

	slog.Info("note deleted", slog.String("id", s.ID))

	return s.Out.WriteLine(fmt.Sprintf("Note %s deleted", s.ID))
}
