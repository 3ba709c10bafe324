package store

import (
	"github.com/spf13/afero"

	"github.com/ayoisaiah/ppm/internal/models"
)

// JSONTaskStore keeps all tasks in one JSON array file.
type JSONTaskStore struct {
	file jsonFile[models.Task]
}

func NewJSONTaskStore(fsys afero.Fs, path string) *JSONTaskStore {
	return &JSONTaskStore{file: newJSONFile[models.Task](fsys, path)}
}

func findTask(tasks []models.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}

	return -1
}

func (s *JSONTaskStore) Create(task models.Task) error {
	tasks, err := s.file.load()
	if err != nil {
		return err
	}

	return s.file.save(append(tasks, task))
}

func (s *JSONTaskStore) Get(id string) (*models.Task, error) {
	tasks, err := s.file.load()
	if err != nil {
		return nil, err
	}

	i := findTask(tasks, id)
	if i < 0 {
		return nil, models.ErrNotFound.Fmt("task " + id)
	}

	return &tasks[i], nil
}

func (s *JSONTaskStore) UpdateStatus(id string, status models.TaskStatus) error {
	tasks, err := s.file.load()
	if err != nil {
		return err
	}

	i := findTask(tasks, id)
	if i < 0 {
		return models.ErrNotFound.Fmt("task " + id)
	}

	tasks[i].Status = status

	return s.file.save(tasks)
}

func (s *JSONTaskStore) List() ([]models.Task, error) {
	return s.file.load()
}

func (s *JSONTaskStore) ListByProject(project string) ([]models.Task, error) {
	tasks, err := s.file.load()
	if err != nil {
		return nil, err
	}

	return filterTasks(tasks, project), nil
}

func (s *JSONTaskStore) Delete(id string) error {
	tasks, err := s.file.load()
	if err != nil {
		return err
	}

	i := findTask(tasks, id)
	if i < 0 {
		return models.ErrNotFound.Fmt("task " + id)
	}

	return s.file.save(append(tasks[:i], tasks[i+1:]...))
}

func filterTasks(tasks []models.Task, project string) []models.Task {
	out := []models.Task{}

	for i := range tasks {
		if tasks[i].Project == project {
			out = append(out, tasks[i])
		}
	}

	return out
}
