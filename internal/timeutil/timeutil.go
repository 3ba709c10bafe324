// Package timeutil provides utility functions for working with durations and
// calendar comparisons.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	dateparser "github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/ppm/internal/apperr"
)

const minutesInAnHour = 60

const (
	HoursInADay = 24
	DaysInAWeek = 7
)

// TimestampFormat is the layout used when printing session instants.
const TimestampFormat = "2006-01-02 15:04:05 UTC"

var errInvalidDate = &apperr.Error{
	Message: "unable to parse date '%s'",
}

// ErrInvalidDate is returned by FromStr.
var ErrInvalidDate = errInvalidDate

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// WholeMinutes truncates d to a whole number of minutes.
func WholeMinutes(d time.Duration) int {
	return int(d / time.Minute)
}

// FormatDuration renders d as "{h}h {m}m", or "{m}m" below an hour. Partial
// minutes are dropped.
func FormatDuration(d time.Duration) string {
	hrs, mins := MinsToHoursAndMins(WholeMinutes(d))
	if hrs > 0 {
		return fmt.Sprintf("%dh %dm", hrs, mins)
	}

	return fmt.Sprintf("%dm", mins)
}

// FormatTimestamp renders t in UTC using TimestampFormat.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// SameDay reports whether t falls on the same calendar day as ref in ref's
// location.
func SameDay(t, ref time.Time) bool {
	t = t.In(ref.Location())

	return t.Year() == ref.Year() && t.YearDay() == ref.YearDay()
}

// WithinWeek reports whether t started less than seven whole days before
// ref and in the same year. This is a rolling window, not an ISO week.
func WithinWeek(t, ref time.Time) bool {
	days := int(ref.Sub(t) / (HoursInADay * time.Hour))

	return days >= 0 && days < DaysInAWeek &&
		t.In(ref.Location()).Year() == ref.Year()
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// FromStr parses an absolute or relative date such as "2024-03-01",
// "yesterday" or "3 days ago" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errInvalidDate.Fmt(s)
	}

	if t, err := time.ParseInLocation(time.DateOnly, s, now.Location()); err == nil {
		return RoundToStart(t), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errInvalidDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}
