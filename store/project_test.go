package store_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/ppm/internal/models"
	"github.com/ayoisaiah/ppm/store"
)

func projectStores() map[string]store.ProjectRepository {
	return map[string]store.ProjectRepository{
		"json": store.NewJSONProjectStore(
			afero.NewMemMapFs(),
			"/data/projects.json",
		),
		"memory": store.NewMemoryProjectStore(),
	}
}

func TestProjectRepository(t *testing.T) {
	for name, repo := range projectStores() {
		t.Run(name, func(t *testing.T) {
			p := models.Project{
				Name:        "ppm",
				Description: "productivity tracker",
				Status:      models.ProjectActive,
				CreatedAt:   start,
			}

			require.NoError(t, repo.Create(p))
			assert.ErrorIs(t, repo.Create(p), models.ErrAlreadyExists)

			require.NoError(t, repo.UpdateStatus("ppm", models.ProjectInactive))

			got, err := repo.Get("ppm")
			require.NoError(t, err)
			assert.Equal(t, models.ProjectInactive, got.Status)
			assert.Equal(t, "productivity tracker", got.Description)

			projects, err := repo.List()
			require.NoError(t, err)
			assert.Len(t, projects, 1)

			require.NoError(t, repo.Delete("ppm"))

			_, err = repo.Get("ppm")
			assert.ErrorIs(t, err, models.ErrNotFound)
			assert.ErrorIs(t, repo.Delete("ppm"), models.ErrNotFound)
			assert.ErrorIs(
				t,
				repo.UpdateStatus("ppm", models.ProjectActive),
				models.ErrNotFound,
			)
		})
	}
}
