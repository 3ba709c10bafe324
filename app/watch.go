package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/ppm/internal/clock"
	"github.com/ayoisaiah/ppm/internal/models"
	"github.com/ayoisaiah/ppm/internal/timeutil"
	"github.com/ayoisaiah/ppm/store"
)

const (
	padding  = 2
	maxWidth = 80
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#B0DB43"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777"))

	remainingStyle = lipgloss.NewStyle().
			Bold(true)
)

type keymap struct {
	quit key.Binding
}

var defaultKeymap = keymap{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type tickMsg time.Time

// notifyFunc sends a desktop notification.
type notifyFunc func(title, message string) error

func desktopNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// watchModel renders a live countdown for one focus session. It reads the
// time from the injected clock on every tick, so ending or cancelling the
// session from another terminal does not stop the view.
type watchModel struct {
	clock    clock.Clock
	notify   notifyFunc
	help     help.Model
	progress progress.Model
	session  models.FocusSession
	now      time.Time
	done     bool
}

func newWatchModel(
	c clock.Clock,
	sess models.FocusSession,
	notify notifyFunc,
) *watchModel {
	return &watchModel{
		clock:    c,
		notify:   notify,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		session:  sess,
		now:      c.Now(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *watchModel) Init() tea.Cmd {
	return tick()
}

// remaining returns the time left in the session, never less than zero.
func (m *watchModel) remaining() time.Duration {
	return max(m.session.End.Sub(m.now), 0)
}

// percent returns the elapsed share of the session window.
func (m *watchModel) percent() float64 {
	total := m.session.Duration()
	if total <= 0 {
		return 1
	}

	return 1 - float64(m.remaining())/float64(total)
}

func (m *watchModel) finish() {
	m.done = true

	if m.notify == nil {
		return
	}

	err := m.notify(
		"Focus session complete",
		fmt.Sprintf(
			"%s of focus on %s",
			timeutil.FormatDuration(m.session.Duration()),
			m.session.ProjectOrDefault(),
		),
	)
	if err != nil {
		slog.Warn("unable to display notification", slog.Any("error", err))
	}
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = m.clock.Now()

		if !m.session.IsActive(m.now) {
			m.finish()
			return m, tea.Quit
		}

		return m, tick()

	case tea.KeyMsg:
		if key.Matches(msg, defaultKeymap.quit) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd

	default:
		slog.Debug("unhandled watch message", slog.String("msg", spew.Sdump(msg)))
	}

	return m, nil
}

// formatRemaining returns d formatted as "MM:SS".
func formatRemaining(d time.Duration) string {
	secs := int(d / time.Second)

	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (m *watchModel) View() string {
	var s strings.Builder

	pad := strings.Repeat(" ", padding)

	if m.done {
		s.WriteString(pad + headerStyle.Render("Focus session complete") + "\n")
		return s.String()
	}

	s.WriteString("\n" + pad)
	s.WriteString(headerStyle.Render("Focus: " + m.session.ProjectOrDefault()))
	s.WriteString(" ")
	s.WriteString(hintStyle.Render("until " + m.session.End.Local().Format("15:04:05")))
	s.WriteString("\n\n" + pad)
	s.WriteString(remainingStyle.Render(formatRemaining(m.remaining())))
	s.WriteString("\n\n" + pad)
	s.WriteString(m.progress.ViewAs(m.percent()))
	s.WriteString("\n\n" + pad)
	s.WriteString(m.help.ShortHelpView([]key.Binding{defaultKeymap.quit}))
	s.WriteString("\n")

	return s.String()
}

// watchService shows the live view for the active session.
type watchService struct {
	clock  clock.Clock
	repo   store.SessionRepository
	notify bool
}

func (w *watchService) Run() error {
	active, err := w.repo.ActiveSession(w.clock.Now())
	if err != nil {
		return err
	}

	if active == nil {
		return models.ErrNoActiveSession
	}

	var notify notifyFunc
	if w.notify {
		notify = desktopNotify
	}

	_, err = tea.NewProgram(newWatchModel(w.clock, *active, notify)).Run()

	return err
}
