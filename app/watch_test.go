package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/ppm/internal/clock"
	"github.com/ayoisaiah/ppm/internal/models"
	"github.com/ayoisaiah/ppm/internal/testutil"
	"github.com/ayoisaiah/ppm/store"
)

var watchStart = testutil.Date(2024, time.March, 1, 9, 0)

func newTestSession() models.FocusSession {
	return models.FocusSession{
		ID:      "session_a",
		Project: "ppm",
		Start:   watchStart,
		End:     watchStart.Add(30 * time.Minute),
	}
}

func TestWatchModelCountsDown(t *testing.T) {
	c := clock.NewFixed(watchStart.Add(10 * time.Minute))

	m := newWatchModel(c, newTestSession(), nil)

	assert.Equal(t, 20*time.Minute, m.remaining())
	assert.InDelta(t, 1.0/3, m.percent(), 0.0001)
	assert.Contains(t, m.View(), "20:00")
	assert.Contains(t, m.View(), "Focus: ppm")

	c.Advance(5*time.Minute + 30*time.Second)

	_, cmd := m.Update(tickMsg(c.Now()))
	require.NotNil(t, cmd)
	assert.False(t, m.done)
	assert.Contains(t, m.View(), "14:30")
}

func TestWatchModelNotifiesOnCompletion(t *testing.T) {
	c := clock.NewFixed(watchStart.Add(29 * time.Minute))

	var titles, messages []string

	notify := func(title, message string) error {
		titles = append(titles, title)
		messages = append(messages, message)

		return nil
	}

	m := newWatchModel(c, newTestSession(), notify)

	c.Set(watchStart.Add(30 * time.Minute))
	m.Update(tickMsg(c.Now()))
	assert.False(t, m.done, "the end instant is still inside the session")

	c.Advance(time.Second)

	_, cmd := m.Update(tickMsg(c.Now()))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.True(t, m.done)
	assert.Equal(t, []string{"Focus session complete"}, titles)
	assert.Equal(t, []string{"30m of focus on ppm"}, messages)
	assert.True(t, strings.Contains(m.View(), "Focus session complete"))
	assert.Equal(t, time.Duration(0), m.remaining())
}

func TestWatchModelQuitKey(t *testing.T) {
	m := newWatchModel(clock.NewFixed(watchStart), newTestSession(), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWatchServiceWhenIdle(t *testing.T) {
	w := &watchService{
		clock: clock.NewFixed(watchStart),
		repo:  store.NewMemorySessionStore(),
	}

	assert.ErrorIs(t, w.Run(), models.ErrNoActiveSession)
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "00:00", formatRemaining(0))
	assert.Equal(t, "01:05", formatRemaining(65*time.Second))
	assert.Equal(t, "90:00", formatRemaining(90*time.Minute))
}
