// Package models defines the entities tracked by ppm.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultProject is the label reported for sessions without a project.
const DefaultProject = "Inbox"

// FocusSession is a timed block of focused work. A session is active for
// every instant in [Start, End].
type FocusSession struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	ID      string    `json:"id"`
	Project string    `json:"project,omitempty"`
}

// NewFocusSession creates a session that starts at now and lasts for d.
func NewFocusSession(now time.Time, d time.Duration, project string) FocusSession {
	return FocusSession{
		ID:      NewID(SessionPrefix),
		Project: project,
		Start:   now,
		End:     now.Add(d),
	}
}

// IsActive reports whether t falls within the session window. Both bounds
// are inclusive.
func (s *FocusSession) IsActive(t time.Time) bool {
	return !t.Before(s.Start) && !t.After(s.End)
}

// Duration returns the length of the session window.
func (s *FocusSession) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// ProjectOrDefault returns the project name, or DefaultProject when unset.
func (s *FocusSession) ProjectOrDefault() string {
	if s.Project == "" {
		return DefaultProject
	}

	return s.Project
}

// Note is a free-text note. Only Content may change after creation.
type Note struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Project   string    `json:"project,omitempty"`
	Content   string    `json:"content"`
}

// TaskState is the lifecycle position of a task.
type TaskState string

const (
	TaskPending  TaskState = "pending"
	TaskDone     TaskState = "done"
	TaskCanceled TaskState = "canceled"
)

// TaskStatus pairs a state with the instant the task left the pending state.
// At is zero for pending tasks.
type TaskStatus struct {
	At    time.Time `json:"at,omitempty"`
	State TaskState `json:"state"`
}

func (s TaskStatus) MarshalJSON() ([]byte, error) {
	type status struct {
		At    *time.Time `json:"at,omitempty"`
		State TaskState  `json:"state"`
	}

	out := status{State: s.State}
	if s.State != TaskPending {
		at := s.At
		out.At = &at
	}

	return json.Marshal(out)
}

func (s *TaskStatus) UnmarshalJSON(b []byte) error {
	type status struct {
		At    *time.Time `json:"at"`
		State TaskState  `json:"state"`
	}

	var in status

	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	switch in.State {
	case TaskPending:
	case TaskDone, TaskCanceled:
		if in.At == nil {
			return fmt.Errorf("task status %q is missing its timestamp", in.State)
		}

		s.At = *in.At
	default:
		return fmt.Errorf("unknown task state %q", in.State)
	}

	s.State = in.State

	return nil
}

// Task is a unit of work belonging to a project.
type Task struct {
	CreatedAt   time.Time  `json:"created_at"`
	Status      TaskStatus `json:"status"`
	ID          string     `json:"id"`
	Project     string     `json:"project"`
	Description string     `json:"description"`
}

// NewTask creates a pending task.
func NewTask(now time.Time, project, description string) Task {
	return Task{
		ID:          NewID(TaskPrefix),
		Project:     project,
		Description: description,
		Status:      TaskStatus{State: TaskPending},
		CreatedAt:   now,
	}
}

// Complete marks a pending task as done at now.
func (t *Task) Complete(now time.Time) error {
	return t.close(TaskDone, now)
}

// Cancel marks a pending task as canceled at now.
func (t *Task) Cancel(now time.Time) error {
	return t.close(TaskCanceled, now)
}

func (t *Task) close(state TaskState, now time.Time) error {
	if t.Status.State != TaskPending {
		return ErrTaskClosed.Fmt(t.ID, t.Status.State)
	}

	t.Status = TaskStatus{State: state, At: now}

	return nil
}

// ProjectStatus tells whether a project is still being worked on.
type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectInactive ProjectStatus = "inactive"
)

// Project groups sessions, tasks and notes by name.
type Project struct {
	CreatedAt   time.Time     `json:"created_at"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
}
