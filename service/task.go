package service

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/ayoisaiah/ppm/internal/apperr"
	"github.com/ayoisaiah/ppm/internal/clock"
	"github.com/ayoisaiah/ppm/internal/models"
	"github.com/ayoisaiah/ppm/internal/output"
	"github.com/ayoisaiah/ppm/store"
)

var errEmptyDescription = &apperr.Error{
	Message: "a task description is required",
}

// TaskFilter selects tasks by state. The zero value selects every task.
type TaskFilter string

const (
	TaskFilterAll      TaskFilter = "all"
	TaskFilterPending  TaskFilter = TaskFilter(models.TaskPending)
	TaskFilterDone     TaskFilter = TaskFilter(models.TaskDone)
	TaskFilterCanceled TaskFilter = TaskFilter(models.TaskCanceled)
)

func (f TaskFilter) match(t *models.Task) bool {
	switch f {
	case "", TaskFilterAll:
		return true
	default:
		return TaskFilter(t.Status.State) == f
	}
}

// AddTask creates a pending task.
type AddTask struct {
	Clock       clock.Clock
	Tasks       store.TaskRepository
	Out         output.Writer
	Project     string
	Description string
}

func (s *AddTask) Run() error {
	description := strings.TrimSpace(s.Description)
	if description == "" {
		return errEmptyDescription
	}

	project := s.Project
	if project == "" {
		project = models.DefaultProject
	}

	task := models.NewTask(s.Clock.Now(), project, description)

	if err := s.Tasks.Create(task); err != nil {
		return err
	}

	slog.Info(
		"task created",
		slog.String("id", task.ID),
		slog.String("project", task.Project),
	)

	return s.Out.WriteLine(fmt.Sprintf("Task created for project '%s'", project))
}

// ListTasks prints tasks, newest first.
type ListTasks struct {
	Tasks   store.TaskRepository
	Out     output.Writer
	Filter  TaskFilter
	Project string
}

func (s *ListTasks) Run() error {
	var (
		tasks []models.Task
		err   error
	)

	if s.Project != "" {
		tasks, err = s.Tasks.ListByProject(s.Project)
	} else {
		tasks, err = s.Tasks.List()
	}

	if err != nil {
		return err
	}

	tasks = slices.DeleteFunc(tasks, func(t models.Task) bool {
		return !s.Filter.match(&t)
	})

	if len(tasks) == 0 {
		return s.Out.WriteLine("No tasks found")
	}

	slices.SortStableFunc(tasks, func(a, b models.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, fmt.Sprintf("%d task(s) found:", len(tasks)))

	for i := range tasks {
		t := &tasks[i]

		lines = append(
			lines,
			fmt.Sprintf(
				"  %s %s - %s (%s)",
				taskMarker(t.Status.State),
				t.ID,
				t.Description,
				t.Project,
			),
		)
	}

	return writeLines(s.Out, lines...)
}

func taskMarker(state models.TaskState) string {
	switch state {
	case models.TaskDone:
		return "[✓]"
	case models.TaskCanceled:
		return "[✗]"
	default:
		return "[ ]"
	}
}

// CompleteTask marks a pending task as done.
type CompleteTask struct {
	Clock clock.Clock
	Tasks store.TaskRepository
	Out   output.Writer
	ID    string
}

func (s *CompleteTask) Run() error {
	return closeTask(s.Clock, s.Tasks, s.Out, s.ID, models.TaskDone)
}

// CancelTask marks a pending task as canceled.
type CancelTask struct {
	Clock clock.Clock
	Tasks store.TaskRepository
	Out   output.Writer
	ID    string
}

func (s *CancelTask) Run() error {
	return closeTask(s.Clock, s.Tasks, s.Out, s.ID, models.TaskCanceled)
}

func closeTask(
	c clock.Clock,
	tasks store.TaskRepository,
	out output.Writer,
	id string,
	state models.TaskState,
) error {
	task, err := tasks.Get(id)
	if err != nil {
		return err
	}

	now := c.Now()

	verb := "completed"
	if state == models.TaskCanceled {
		verb = "canceled"
		err = task.Cancel(now)
	} else {
		err = task.Complete(now)
	}

	if err != nil {
		return err
	}

	if err = tasks.UpdateStatus(id, task.Status); err != nil {
		return err
	}

	slog.Info("task "+verb, slog.String("id", id))

	return out.WriteLine(fmt.Sprintf("Task %s %s", id, verb))
}
