package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/ppm/internal/models"
	"github.com/ayoisaiah/ppm/internal/testutil"
	"github.com/ayoisaiah/ppm/store"
)

const sessionsFile = "/data/sessions.json"

var start = testutil.Date(2024, time.March, 1, 9, 0)

func newSession(id string, from time.Time, d time.Duration) models.FocusSession {
	return models.FocusSession{
		ID:    id,
		Start: from,
		End:   from.Add(d),
	}
}

// sessionStores returns every SessionRepository implementation so the same
// contract is checked against each.
func sessionStores(t *testing.T) map[string]store.SessionRepository {
	t.Helper()

	bolt, err := store.NewBoltSessionStore(
		filepath.Join(t.TempDir(), "ppm.db"),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		bolt.Close()
	})

	return map[string]store.SessionRepository{
		"json":   store.NewJSONSessionStore(afero.NewMemMapFs(), sessionsFile),
		"bolt":   bolt,
		"memory": store.NewMemorySessionStore(),
	}
}

func TestSessionRepositoryActiveSession(t *testing.T) {
	for name, repo := range sessionStores(t) {
		t.Run(name, func(t *testing.T) {
			active, err := repo.ActiveSession(start)
			require.NoError(t, err)
			assert.Nil(t, active)

			sess := newSession("session_a", start, 60*time.Minute)
			require.NoError(t, repo.Create(sess))

			for _, at := range []time.Time{
				start,
				start.Add(30 * time.Minute),
				start.Add(60 * time.Minute),
			} {
				active, err = repo.ActiveSession(at)
				require.NoError(t, err)
				require.NotNil(t, active, "expected active session at %v", at)
				assert.Equal(t, "session_a", active.ID)
			}

			for _, at := range []time.Time{
				start.Add(-time.Nanosecond),
				start.Add(60*time.Minute + time.Nanosecond),
			} {
				active, err = repo.ActiveSession(at)
				require.NoError(t, err)
				assert.Nil(t, active, "expected no active session at %v", at)
			}
		})
	}
}

func TestSessionRepositoryEnd(t *testing.T) {
	for name, repo := range sessionStores(t) {
		t.Run(name, func(t *testing.T) {
			sess := newSession("session_a", start, 60*time.Minute)
			require.NoError(t, repo.Create(sess))

			endAt := start.Add(10 * time.Minute)
			require.NoError(t, repo.End("session_a", endAt))

			sessions, err := repo.List()
			require.NoError(t, err)
			require.Len(t, sessions, 1)
			assert.True(t, sessions[0].End.Equal(endAt))
			assert.True(t, sessions[0].Start.Equal(start))

			active, err := repo.ActiveSession(endAt.Add(time.Second))
			require.NoError(t, err)
			assert.Nil(t, active)

			err = repo.End("session_missing", endAt)
			assert.ErrorIs(t, err, models.ErrNoActiveSession)
		})
	}
}

func TestSessionRepositoryDelete(t *testing.T) {
	for name, repo := range sessionStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(
				t,
				repo.Create(newSession("session_a", start, time.Hour)),
			)
			require.NoError(
				t,
				repo.Create(
					newSession("session_b", start.Add(2*time.Hour), time.Hour),
				),
			)

			require.NoError(t, repo.Delete("session_a"))

			sessions, err := repo.List()
			require.NoError(t, err)
			require.Len(t, sessions, 1)
			assert.Equal(t, "session_b", sessions[0].ID)

			err = repo.Delete("session_a")
			assert.ErrorIs(t, err, models.ErrNoActiveSession)
		})
	}
}

func TestSessionRepositoryListEmpty(t *testing.T) {
	for name, repo := range sessionStores(t) {
		t.Run(name, func(t *testing.T) {
			sessions, err := repo.List()
			require.NoError(t, err)
			assert.Empty(t, sessions)
		})
	}
}

func TestJSONSessionStoreFirstActiveWins(t *testing.T) {
	repo := store.NewJSONSessionStore(afero.NewMemMapFs(), sessionsFile)

	require.NoError(t, repo.Create(newSession("session_a", start, time.Hour)))
	require.NoError(
		t,
		repo.Create(newSession("session_b", start.Add(time.Minute), time.Hour)),
	)

	active, err := repo.ActiveSession(start.Add(5 * time.Minute))
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "session_a", active.ID)
}

func TestJSONSessionStorePersists(t *testing.T) {
	fs := afero.NewMemMapFs()

	sess := newSession("session_a", start, time.Hour)
	sess.Project = "ppm"

	require.NoError(
		t,
		store.NewJSONSessionStore(fs, sessionsFile).Create(sess),
	)

	sessions, err := store.NewJSONSessionStore(fs, sessionsFile).List()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "ppm", sessions[0].Project)

	info, err := fs.Stat(sessionsFile)
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())

	entries, err := afero.ReadDir(fs, filepath.Dir(sessionsFile))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestJSONSessionStoreEmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, sessionsFile, nil, 0o600))

	sessions, err := store.NewJSONSessionStore(fs, sessionsFile).List()
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestJSONSessionStoreMalformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(
		t,
		afero.WriteFile(fs, sessionsFile, []byte("{not json"), 0o600),
	)

	repo := store.NewJSONSessionStore(fs, sessionsFile)

	_, err := repo.List()
	assert.ErrorIs(t, err, store.ErrMalformedStore)

	_, err = repo.ActiveSession(start)
	assert.ErrorIs(t, err, store.ErrMalformedStore)

	err = repo.Create(newSession("session_a", start, time.Hour))
	assert.ErrorIs(t, err, store.ErrMalformedStore)

	b, err := afero.ReadFile(fs, sessionsFile)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(b))
}

func TestBoltSessionStoreLocked(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ppm.db")

	first, err := store.NewBoltSessionStore(dbPath)
	require.NoError(t, err)

	defer first.Close()

	_, err = store.NewBoltSessionStore(dbPath)
	assert.ErrorIs(t, err, store.ErrStoreLocked)
}
