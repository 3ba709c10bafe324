package store

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ayoisaiah/ppm/internal/models"
)

// MemorySessionStore is an in-memory SessionRepository.
type MemorySessionStore struct {
	sessions []models.FocusSession
	mu       sync.Mutex
}

func NewMemorySessionStore(sessions ...models.FocusSession) *MemorySessionStore {
	return &MemorySessionStore{sessions: slices.Clone(sessions)}
}

func (m *MemorySessionStore) ActiveSession(
	now time.Time,
) (*models.FocusSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return firstActive(m.sessions, now), nil
}

func (m *MemorySessionStore) Create(sess models.FocusSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions = append(m.sessions, sess)

	return nil
}

func (m *MemorySessionStore) End(id string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := findSession(m.sessions, id)
	if i < 0 {
		return models.ErrNoActiveSession
	}

	m.sessions[i].End = now

	return nil
}

func (m *MemorySessionStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := findSession(m.sessions, id)
	if i < 0 {
		return models.ErrNoActiveSession
	}

	m.sessions = slices.Delete(m.sessions, i, i+1)

	return nil
}

func (m *MemorySessionStore) List() ([]models.FocusSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := slices.Clone(m.sessions)
	if out == nil {
		out = []models.FocusSession{}
	}

	return out, nil
}

// MemoryNoteStore is an in-memory NoteRepository.
type MemoryNoteStore struct {
	notes map[string]models.Note
	mu    sync.Mutex
}

func NewMemoryNoteStore() *MemoryNoteStore {
	return &MemoryNoteStore{notes: make(map[string]models.Note)}
}

func (m *MemoryNoteStore) Create(note models.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notes[note.ID]; ok {
		return models.ErrAlreadyExists.Fmt("note " + note.ID)
	}

	m.notes[note.ID] = note

	return nil
}

func (m *MemoryNoteStore) Get(id string) (*models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notes[id]
	if !ok {
		return nil, models.ErrNotFound.Fmt("note " + id)
	}

	return &n, nil
}

func (m *MemoryNoteStore) UpdateContent(id, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notes[id]
	if !ok {
		return models.ErrNotFound.Fmt("note " + id)
	}

	n.Content = content
	m.notes[id] = n

	return nil
}

func (m *MemoryNoteStore) List() ([]models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	notes := make([]models.Note, 0, len(m.notes))
	for _, n := range m.notes {
		notes = append(notes, n)
	}

	slices.SortFunc(notes, func(a, b models.Note) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(b.ID, a.ID)
	})

	return notes, nil
}

func (m *MemoryNoteStore) ListByProject(project string) ([]models.Note, error) {
	notes, err := m.List()
	if err != nil {
		return nil, err
	}

	return filterNotes(notes, project), nil
}

func (m *MemoryNoteStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notes[id]; !ok {
		return models.ErrNotFound.Fmt("note " + id)
	}

	delete(m.notes, id)

	return nil
}

// MemoryTaskStore is an in-memory TaskRepository.
type MemoryTaskStore struct {
	tasks []models.Task
	mu    sync.Mutex
}

func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{}
}

func (m *MemoryTaskStore) Create(task models.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks = append(m.tasks, task)

	return nil
}

func (m *MemoryTaskStore) Get(id string) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := findTask(m.tasks, id)
	if i < 0 {
		return nil, models.ErrNotFound.Fmt("task " + id)
	}

	t := m.tasks[i]

	return &t, nil
}

func (m *MemoryTaskStore) UpdateStatus(id string, status models.TaskStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := findTask(m.tasks, id)
	if i < 0 {
		return models.ErrNotFound.Fmt("task " + id)
	}

	m.tasks[i].Status = status

	return nil
}

func (m *MemoryTaskStore) List() ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := slices.Clone(m.tasks)
	if out == nil {
		out = []models.Task{}
	}

	return out, nil
}

func (m *MemoryTaskStore) ListByProject(project string) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return filterTasks(m.tasks, project), nil
}

func (m *MemoryTaskStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := findTask(m.tasks, id)
	if i < 0 {
		return models.ErrNotFound.Fmt("task " + id)
	}

	m.tasks = slices.Delete(m.tasks, i, i+1)

	return nil
}

// MemoryProjectStore is an in-memory ProjectRepository.
type MemoryProjectStore struct {
	projects []models.Project
	mu       sync.Mutex
}

func NewMemoryProjectStore() *MemoryProjectStore {
	return &MemoryProjectStore{}
}

func (m *MemoryProjectStore) Create(project models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if findProject(m.projects, project.Name) >= 0 {
		return models.ErrAlreadyExists.Fmt("project '" + project.Name + "'")
	}

	m.projects = append(m.projects, project)

	return nil
}

func (m *MemoryProjectStore) Get(name string) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := findProject(m.projects, name)
	if i < 0 {
		return nil, models.ErrNotFound.Fmt("project '" + name + "'")
	}

	p := m.projects[i]

	return &p, nil
}

func (m *MemoryProjectStore) UpdateStatus(
	name string,
	status models.ProjectStatus,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := findProject(m.projects, name)
	if i < 0 {
		return models.ErrNotFound.Fmt("project '" + name + "'")
	}

	m.projects[i].Status = status

	return nil
}

func (m *MemoryProjectStore) List() ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := slices.Clone(m.projects)
	if out == nil {
		out = []models.Project{}
	}

	return out, nil
}

func (m *MemoryProjectStore) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := findProject(m.projects, name)
	if i < 0 {
		return models.ErrNotFound.Fmt("project '" + name + "'")
	}

	m.projects = slices.Delete(m.projects, i, i+1)

	return nil
}
