package service

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/ayoisaiah/ppm/internal/clock"
	"github.com/ayoisaiah/ppm/internal/models"
	"github.com/ayoisaiah/ppm/internal/output"
	"github.com/ayoisaiah/ppm/internal/timeutil"
	"github.com/ayoisaiah/ppm/store"
)

// StartSession begins a focus session unless one is already active.
type StartSession struct {
	Clock    clock.Clock
	Repo     store.SessionRepository
	Out      output.Writer
	Project  string
	Duration time.Duration
}

func (s *StartSession) Run() error {
	if s.Duration <= 0 {
		return models.ErrInvalidDuration.Fmt(s.Duration)
	}

	now := s.Clock.Now()

	active, err := s.Repo.ActiveSession(now)
	if err != nil {
		return err
	}

	if active != nil {
		return models.ErrSessionAlreadyActive
	}

	sess := models.NewFocusSession(now, s.Duration, s.Project)

	if err = s.Repo.Create(sess); err != nil {
		return err
	}

	slog.Info(
		"focus session started",
		slog.String("id", sess.ID),
		slog.String("project", sess.Project),
		slog.Duration("duration", s.Duration),
	)

	return writeLines(
		s.Out,
		"Focus session started",
		"Project: "+sess.ProjectOrDefault(),
		fmt.Sprintf("Duration: %d minutes", timeutil.WholeMinutes(s.Duration)),
	)
}

// EndSession closes the active session at the current instant.
type EndSession struct {
	Clock clock.Clock
	Repo  store.SessionRepository
	Out   output.Writer
}

func (s *EndSession) Run() error {
	now := s.Clock.Now()

	active, err := s.Repo.ActiveSession(now)
	if err != nil {
		return err
	}

	if active == nil {
		return models.ErrNoActiveSession
	}

	if err = s.Repo.End(active.ID, now); err != nil {
		return err
	}

	slog.Info("focus session ended", slog.String("id", active.ID))

	return writeLines(
		s.Out,
		"Focus session ended",
		"Session ID: "+active.ID,
	)
}

// CancelSession discards the active session entirely.
type CancelSession struct {
	Clock clock.Clock
	Repo  store.SessionRepository
	Out   output.Writer
}

func (s *CancelSession) Run() error {
	now := s.Clock.Now()

	active, err := s.Repo.ActiveSession(now)
	if err != nil {
		return err
	}

	if active == nil {
		return models.ErrNoActiveSession
	}

	if err = s.Repo.Delete(active.ID); err != nil {
		return err
	}

	slog.Info("focus session cancelled", slog.String("id", active.ID))

	return writeLines(
		s.Out,
		"Focus session cancelled",
		"Session ID: "+active.ID,
	)
}

// SessionStatus reports on the active session. Being idle is not an error.
type SessionStatus struct {
	Clock clock.Clock
	Repo  store.SessionRepository
	Out   output.Writer
}

func (s *SessionStatus) Run() error {
	now := s.Clock.Now()

	active, err := s.Repo.ActiveSession(now)
	if err != nil {
		return err
	}

	if active == nil {
		return s.Out.WriteLine("No active focus session")
	}

	remaining := timeutil.WholeMinutes(active.End.Sub(now))

	return writeLines(
		s.Out,
		fmt.Sprintf("Focus session active (%d minutes remaining)", remaining),
		"Started: "+timeutil.FormatTimestamp(active.Start),
		"Ends: "+timeutil.FormatTimestamp(active.End),
	)
}

// ListSessions prints sessions, most recent first.
type ListSessions struct {
	Clock clock.Clock
	Repo  store.SessionRepository
	Out   output.Writer
	// Since drops sessions that started before it. Zero means no filter.
	Since time.Time
	// Limit caps the number of sessions printed. Zero means no limit.
	Limit int
}

func (s *ListSessions) Run() error {
	now := s.Clock.Now()

	sessions, err := s.Repo.List()
	if err != nil {
		return err
	}

	if !s.Since.IsZero() {
		sessions = slices.DeleteFunc(sessions, func(sess models.FocusSession) bool {
			return sess.Start.Before(s.Since)
		})
	}

	if len(sessions) == 0 {
		return s.Out.WriteLine("No focus sessions found")
	}

	slices.SortStableFunc(sessions, func(a, b models.FocusSession) int {
		return b.Start.Compare(a.Start)
	})

	if s.Limit > 0 && len(sessions) > s.Limit {
		sessions = sessions[:s.Limit]
	}

	lines := make([]string, 0, 2+2*len(sessions))
	lines = append(lines, fmt.Sprintf("Focus sessions (%d)", len(sessions)), "")

	for i := range sessions {
		sess := &sessions[i]

		status := "Completed"
		if sess.IsActive(now) {
			status = "Active"
		}

		lines = append(
			lines,
			fmt.Sprintf(
				"[%s] %s - %d minutes",
				status,
				timeutil.FormatTimestamp(sess.Start),
				timeutil.WholeMinutes(sess.Duration()),
			),
			"  ID: "+sess.ID,
		)
	}

	return writeLines(s.Out, lines...)
}

// bucket accumulates the sessions that fall in one reporting period.
type bucket struct {
	total time.Duration
	count int
}

func (b *bucket) add(d time.Duration) {
	b.total += d
	b.count++
}

func (b *bucket) String() string {
	return fmt.Sprintf("%s (%d sessions)", timeutil.FormatDuration(b.total), b.count)
}

func (b *bucket) average() time.Duration {
	if b.count == 0 {
		return 0
	}

	return b.total / time.Duration(b.count)
}

// SessionStats summarises time spent in focus sessions today, over the last
// seven days and overall. Session durations are the planned or ended window,
// so an active session counts in full.
type SessionStats struct {
	Clock clock.Clock
	Repo  store.SessionRepository
	Out   output.Writer
}

func (s *SessionStats) Run() error {
	now := s.Clock.Now()

	sessions, err := s.Repo.List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		return s.Out.WriteLine("No focus sessions found")
	}

	var today, week, all bucket

	for i := range sessions {
		sess := &sessions[i]
		d := sess.Duration()

		all.add(d)

		if timeutil.SameDay(sess.Start, now) {
			today.add(d)
		}

		if timeutil.WithinWeek(sess.Start, now) {
			week.add(d)
		}
	}

	return writeLines(
		s.Out,
		"Focus Session Statistics",
		"",
		"Today: "+today.String(),
		"This week: "+week.String(),
		"All time: "+all.String(),
		"",
		"Average session: "+timeutil.FormatDuration(all.average()),
	)
}
