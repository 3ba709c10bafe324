package service

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/ppm/internal/apperr"
	"github.com/ayoisaiah/ppm/internal/clock"
	"github.com/ayoisaiah/ppm/internal/models"
	"github.com/ayoisaiah/ppm/internal/output"
	"github.com/ayoisaiah/ppm/store"
)

var errEmptyProjectName = &apperr.Error{
	Message: "a project name is required",
}

// ProjectFilter selects projects by status. The zero value selects every
// project.
type ProjectFilter string

const (
	ProjectFilterAll      ProjectFilter = "all"
	ProjectFilterActive   ProjectFilter = ProjectFilter(models.ProjectActive)
	ProjectFilterInactive ProjectFilter = ProjectFilter(models.ProjectInactive)
)

func (f ProjectFilter) match(p *models.Project) bool {
	switch f {
	case "", ProjectFilterAll:
		return true
	default:
		return ProjectFilter(p.Status) == f
	}
}

// CreateProject registers a new active project.
type CreateProject struct {
	Clock       clock.Clock
	Projects    store.ProjectRepository
	Out         output.Writer
	Name        string
	Description string
}

func (s *CreateProject) Run() error {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return errEmptyProjectName
	}

	project := models.Project{
		Name:        name,
		Description: s.Description,
		Status:      models.ProjectActive,
		CreatedAt:   s.Clock.Now(),
	}

	if err := s.Projects.Create(project); err != nil {
		return err
	}

	slog.Info("project created", slog.String("name", name))

	return s.Out.WriteLine(fmt.Sprintf("Project '%s' created", name))
}

// ListProjects prints projects, newest first or by name.
type ListProjects struct {
	Projects store.ProjectRepository
	Out      output.Writer
	Filter   ProjectFilter
	// SortByName orders projects by name, treating digit runs as numbers.
	SortByName bool
}

func (s *ListProjects) Run() error {
	projects, err := s.Projects.List()
	if err != nil {
		return err
	}

	projects = slices.DeleteFunc(projects, func(p models.Project) bool {
		return !s.Filter.match(&p)
	})

	if len(projects) == 0 {
		return s.Out.WriteLine("No projects found")
	}

	if s.SortByName {
		slices.SortStableFunc(projects, func(a, b models.Project) int {
			switch {
			case natural.Less(a.Name, b.Name):
				return -1
			case natural.Less(b.Name, a.Name):
				return 1
			default:
				return 0
			}
		})
	} else {
		slices.SortStableFunc(projects, func(a, b models.Project) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}

	lines := make([]string, 0, len(projects)+1)
	lines = append(lines, fmt.Sprintf("%d project(s) found:", len(projects)))

	for i := range projects {
		p := &projects[i]

		status := "[Active]"
		if p.Status == models.ProjectInactive {
			status = "[Inactive]"
		}

		lines = append(
			lines,
			fmt.Sprintf("  %s %s - %s", status, p.Name, p.Description),
		)
	}

	return writeLines(s.Out, lines...)
}

// SetProjectStatus archives or reactivates a project.
type SetProjectStatus struct {
	Projects store.ProjectRepository
	Out      output.Writer
	Name     string
	Status   models.ProjectStatus
}

func (s *SetProjectStatus) Run() error {
	if err := s.Projects.UpdateStatus(s.Name, s.Status); err != nil {
		return err
	}

	verb := "activated"
	if s.Status == models.ProjectInactive {
		verb = "archived"
	}

	slog.Info("project "+verb, slog.String("name", s.Name))

	return s.Out.WriteLine(fmt.Sprintf("Project '%s' %s", s.Name, verb))
}
