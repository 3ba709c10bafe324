package models_test

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/ppm/internal/models"
)

var start = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

func TestIsActiveBoundsAreInclusive(t *testing.T) {
	s := models.NewFocusSession(start, 30*time.Minute, "")

	cases := []struct {
		at   time.Time
		want bool
	}{
		{start.Add(-time.Second), false},
		{start, true},
		{start.Add(15 * time.Minute), true},
		{start.Add(30 * time.Minute), true},
		{start.Add(30*time.Minute + time.Nanosecond), false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, s.IsActive(tc.at), "at %s", tc.at)
	}
}

func TestProjectOrDefault(t *testing.T) {
	s := models.NewFocusSession(start, time.Minute, "")
	assert.Equal(t, "Inbox", s.ProjectOrDefault())

	s.Project = "ppm"
	assert.Equal(t, "ppm", s.ProjectOrDefault())
}

func TestNewIDIsPrefixedAndOrdered(t *testing.T) {
	ids := make([]string, 50)
	for i := range ids {
		ids[i] = models.NewID(models.NotePrefix)
	}

	for _, id := range ids {
		assert.True(t, strings.HasPrefix(id, "note_"))
	}

	assert.True(t, sort.StringsAreSorted(ids))
}

func TestTaskTransitionsAreOneWay(t *testing.T) {
	task := models.NewTask(start, "ppm", "write tests")

	require.NoError(t, task.Complete(start.Add(time.Hour)))
	assert.Equal(t, models.TaskDone, task.Status.State)

	err := task.Cancel(start.Add(2 * time.Hour))
	assert.ErrorIs(t, err, models.ErrTaskClosed)
	assert.Equal(t, models.TaskDone, task.Status.State)
	assert.Equal(t, start.Add(time.Hour), task.Status.At)
}

func TestTaskStatusJSON(t *testing.T) {
	done := models.TaskStatus{State: models.TaskDone, At: start}

	b, err := json.Marshal(models.TaskStatus{State: models.TaskPending})
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"pending"}`, string(b))

	b, err = json.Marshal(done)
	require.NoError(t, err)

	var got models.TaskStatus

	require.NoError(t, json.Unmarshal(b, &got))

	if diff := cmp.Diff(done, got); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}

	assert.Error(t, json.Unmarshal([]byte(`{"state":"done"}`), &got))
	assert.Error(t, json.Unmarshal([]byte(`{"state":"paused"}`), &got))
}
