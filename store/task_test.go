package store_test

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/ppm/internal/models"
	"github.com/ayoisaiah/ppm/store"
)

func taskStores() map[string]store.TaskRepository {
	return map[string]store.TaskRepository{
		"json":   store.NewJSONTaskStore(afero.NewMemMapFs(), "/data/tasks.json"),
		"memory": store.NewMemoryTaskStore(),
	}
}

func TestTaskRepository(t *testing.T) {
	for name, repo := range taskStores() {
		t.Run(name, func(t *testing.T) {
			tasks, err := repo.List()
			require.NoError(t, err)
			assert.Empty(t, tasks)

			a := models.NewTask(start, "ppm", "write the codec")
			b := models.NewTask(start, "home", "water plants")

			require.NoError(t, repo.Create(a))
			require.NoError(t, repo.Create(b))

			done := models.TaskStatus{
				State: models.TaskDone,
				At:    start.Add(time.Hour),
			}
			require.NoError(t, repo.UpdateStatus(a.ID, done))

			got, err := repo.Get(a.ID)
			require.NoError(t, err)
			assert.Equal(t, models.TaskDone, got.Status.State)
			assert.True(t, got.Status.At.Equal(done.At))

			tasks, err = repo.ListByProject("home")
			require.NoError(t, err)
			require.Len(t, tasks, 1)
			assert.Equal(t, b.ID, tasks[0].ID)

			require.NoError(t, repo.Delete(b.ID))

			tasks, err = repo.List()
			require.NoError(t, err)
			require.Len(t, tasks, 1)
			assert.Equal(t, a.ID, tasks[0].ID)

			_, err = repo.Get(b.ID)
			assert.ErrorIs(t, err, models.ErrNotFound)
			assert.ErrorIs(t, repo.Delete(b.ID), models.ErrNotFound)
			assert.ErrorIs(t, repo.UpdateStatus(b.ID, done), models.ErrNotFound)
		})
	}
}
