package service_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/ppm/internal/clock"
	"github.com/ayoisaiah/ppm/internal/editor"
	"github.com/ayoisaiah/ppm/internal/models"
	"github.com/ayoisaiah/ppm/internal/output"
	"github.com/ayoisaiah/ppm/service"
	"github.com/ayoisaiah/ppm/store"
)

type noteFixture struct {
	clock    *clock.Fixed
	notes    *store.MemoryNoteStore
	sessions *store.MemorySessionStore
	editor   *editor.Memory
	out      *output.Memory
}

func newNoteFixture(responses ...string) *noteFixture {
	return &noteFixture{
		clock:    clock.NewFixed(morning),
		notes:    store.NewMemoryNoteStore(),
		sessions: store.NewMemorySessionStore(),
		editor:   &editor.Memory{Responses: responses},
		out:      &output.Memory{},
	}
}

func (f *noteFixture) create(project, content string) error {
	s := &service.CreateNote{
		Clock:    f.clock,
		Notes:    f.notes,
		Sessions: f.sessions,
		Out:      f.out,
		Editor:   f.editor,
		Project:  project,
		Content:  content,
	}

	return s.Run()
}

func (f *noteFixture) all(t *testing.T) []models.Note {
	t.Helper()

	notes, err := f.notes.List()
	require.NoError(t, err)

	return notes
}

func TestCreateNoteFromEditor(t *testing.T) {
	f := newNoteFixture("---\nid: whatever\n---\n\n# Standup\n\nshipped it\n")

	require.NoError(t, f.create("ppm", ""))

	assert.Equal(t, []string{"Note created for project 'ppm'"}, f.out.Lines())

	require.Len(t, f.editor.Opened, 1)
	assert.True(t, strings.HasPrefix(f.editor.Opened[0], "---\nid: note_"))
	assert.Contains(t, f.editor.Opened[0], "project: ppm\n")
	assert.True(
		t,
		strings.HasSuffix(f.editor.Opened[0], "---\n\n# Write your note here\n\n"),
	)

	notes := f.all(t)
	require.Len(t, notes, 1)
	assert.Equal(t, "# Standup\n\nshipped it", notes[0].Content)
	assert.Equal(t, "ppm", notes[0].Project)
	assert.True(t, notes[0].CreatedAt.Equal(morning))
	assert.True(t, strings.HasPrefix(notes[0].ID, models.NotePrefix))
}

func TestCreateNoteUsesActiveSessionProject(t *testing.T) {
	f := newNoteFixture("just text")

	sess := fixedSession("session_a", morning.Add(-10*time.Minute), 60)
	sess.Project = "deep-work"
	require.NoError(t, f.sessions.Create(sess))

	require.NoError(t, f.create("", ""))

	assert.Equal(t, []string{"Note created for project 'deep-work'"}, f.out.Lines())
	assert.Equal(t, "just text", f.all(t)[0].Content)
}

func TestCreateNoteWithoutProject(t *testing.T) {
	f := newNoteFixture()

	require.NoError(t, f.create("", "inline message"))

	assert.Equal(t, []string{"Note created"}, f.out.Lines())
	assert.Empty(t, f.editor.Opened)
	assert.Equal(t, "inline message", f.all(t)[0].Content)
}

func TestCreateNoteCancelled(t *testing.T) {
	cases := []struct {
		Name      string
		Responses []string
	}{
		{Name: "empty document"},
		{Name: "front matter only", Responses: []string{"---\nid: x\n---\n\n   "}},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			f := newNoteFixture(tc.Responses...)

			require.NoError(t, f.create("", ""))

			assert.Equal(
				t,
				[]string{"Note creation cancelled (no content provided)"},
				f.out.Lines(),
			)
			assert.Empty(t, f.all(t))
		})
	}
}

type failingEditor struct{}

func (failingEditor) Open(string) (string, bool, error) {
	return "", false, errors.New("editor crashed")
}

func TestCreateNoteEditorError(t *testing.T) {
	f := newNoteFixture()

	s := &service.CreateNote{
		Clock:    f.clock,
		Notes:    f.notes,
		Sessions: f.sessions,
		Out:      f.out,
		Editor:   failingEditor{},
	}

	assert.EqualError(t, s.Run(), "editor crashed")
	assert.Empty(t, f.all(t))
}

func TestListNotes(t *testing.T) {
	f := newNoteFixture()

	long := strings.Repeat("a", 60)

	require.NoError(t, f.notes.Create(models.Note{
		ID: "note_a", CreatedAt: morning, Project: "ppm", Content: "short",
	}))
	require.NoError(t, f.notes.Create(models.Note{
		ID: "note_b", CreatedAt: morning.Add(time.Hour), Content: long,
	}))

	s := &service.ListNotes{Notes: f.notes, Out: f.out}
	require.NoError(t, s.Run())

	assert.Equal(t, []string{
		"2 note(s) found:",
		"  note_b - " + strings.Repeat("a", 50) + "...",
		"  note_a - short (ppm)",
	}, f.out.Lines())

	f.out.Reset()

	s = &service.ListNotes{Notes: f.notes, Out: f.out, Project: "ppm"}
	require.NoError(t, s.Run())
	assert.Equal(t, []string{
		"1 note(s) found:",
		"  note_a - short (ppm)",
	}, f.out.Lines())

	f.out.Reset()

	s = &service.ListNotes{Notes: f.notes, Out: f.out, Limit: 1}
	require.NoError(t, s.Run())
	assert.Len(t, f.out.Lines(), 2)
}

func TestListNotesEmpty(t *testing.T) {
	f := newNoteFixture()

	s := &service.ListNotes{Notes: f.notes, Out: f.out}
	require.NoError(t, s.Run())
	assert.Equal(t, []string{"No notes found"}, f.out.Lines())
}

func TestShowNote(t *testing.T) {
	f := newNoteFixture()

	require.NoError(t, f.notes.Create(models.Note{
		ID: "note_a", CreatedAt: morning, Content: "hello",
	}))

	s := &service.ShowNote{Notes: f.notes, Out: f.out, ID: "note_a"}
	require.NoError(t, s.Run())

	assert.Equal(t, []string{
		"---",
		"id: note_a",
		"created_at: 2024-03-01T09:00:00Z",
		"---",
		"",
		"hello",
	}, f.out.Lines())

	s.ID = "note_missing"
	assert.ErrorIs(t, s.Run(), models.ErrNotFound)
}

func TestEditNote(t *testing.T) {
	f := newNoteFixture("  revised  ", "revised", "")

	require.NoError(t, f.notes.Create(models.Note{
		ID: "note_a", CreatedAt: morning, Content: "draft",
	}))

	s := &service.EditNote{
		Notes:  f.notes,
		Out:    f.out,
		Editor: f.editor,
		ID:     "note_a",
	}

	require.NoError(t, s.Run())
	require.NoError(t, s.Run())
	require.NoError(t, s.Run())

	assert.Equal(t, []string{
		"Note note_a updated",
		"Note unchanged",
		"Note unchanged (no content provided)",
	}, f.out.Lines())

	assert.Equal(t, []string{"draft", "revised", "revised"}, f.editor.Opened)

	n, err := f.notes.Get("note_a")
	require.NoError(t, err)
	assert.Equal(t, "revised", n.Content)
}

func TestEditNoteKeepsHorizontalRules(t *testing.T) {
	body := "intro\n\n---\n\nmiddle\n\n---\n\nend"

	f := newNoteFixture(body + " plus a fix\n")

	require.NoError(t, f.notes.Create(models.Note{
		ID: "note_a", CreatedAt: morning, Content: body,
	}))

	s := &service.EditNote{
		Notes:  f.notes,
		Out:    f.out,
		Editor: f.editor,
		ID:     "note_a",
	}

	require.NoError(t, s.Run())

	assert.Equal(t, []string{"Note note_a updated"}, f.out.Lines())

	n, err := f.notes.Get("note_a")
	require.NoError(t, err)
	assert.Equal(t, body+" plus a fix", n.Content)
}

func TestDeleteNote(t *testing.T) {
	f := newNoteFixture()

	require.NoError(t, f.create("", "bye"))

	id := f.all(t)[0].ID

	f.out.Reset()

	s := &service.DeleteNote{Notes: f.notes, Out: f.out, ID: id}
	require.NoError(t, s.Run())

	assert.Equal(t, []string{"Note " + id + " deleted"}, f.out.Lines())
	assert.Empty(t, f.all(t))

	assert.ErrorIs(t, s.Run(), models.ErrNotFound)
}
