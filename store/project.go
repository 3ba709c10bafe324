package store

import (
	"github.com/spf13/afero"

	"github.com/ayoisaiah/ppm/internal/models"
)

// JSONProjectStore keeps all projects in one JSON array file. Names are
// unique.
type JSONProjectStore struct {
	file jsonFile[models.Project]
}

func NewJSONProjectStore(fsys afero.Fs, path string) *JSONProjectStore {
	return &JSONProjectStore{file: newJSONFile[models.Project](fsys, path)}
}

func findProject(projects []models.Project, name string) int {
	for i := range projects {
		if projects[i].Name == name {
			return i
		}
	}

	return -1
}

func (s *JSONProjectStore) Create(project models.Project) error {
	projects, err := s.file.load()
	if err != nil {
		return err
	}

	if findProject(projects, project.Name) >= 0 {
		return models.ErrAlreadyExists.Fmt("project '" + project.Name + "'")
	}

	return s.file.save(append(projects, project))
}

func (s *JSONProjectStore) Get(name string) (*models.Project, error) {
	projects, err := s.file.load()
	if err != nil {
		return nil, err
	}

	i := findProject(projects, name)
	if i < 0 {
		return nil, models.ErrNotFound.Fmt("project '" + name + "'")
	}

	return &projects[i], nil
}

func (s *JSONProjectStore) UpdateStatus(
	name string,
	status models.ProjectStatus,
) error {
	projects, err := s.file.load()
	if err != nil {
		return err
	}

	i := findProject(projects, name)
	if i < 0 {
		return models.ErrNotFound.Fmt("project '" + name + "'")
	}

	projects[i].Status = status

	return s.file.save(projects)
}

func (s *JSONProjectStore) List() ([]models.Project, error) {
	return s.file.load()
}

func (s *JSONProjectStore) Delete(name string) error {
	projects, err := s.file.load()
	if err != nil {
		return err
	}

	i := findProject(projects, name)
	if i < 0 {
		return models.ErrNotFound.Fmt("project '" + name + "'")
	}

	return s.file.save(append(projects[:i], projects[i+1:]...))
}
