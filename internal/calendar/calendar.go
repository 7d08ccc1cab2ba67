// Package calendar provides the date arithmetic the picker engine builds on:
// day-granularity comparisons, day/month enumeration, weekday labels, and
// parsing/formatting against a Go time layout.
//
// Every function treats dates at day precision. Inputs are normalised to
// midnight UTC so wall-clock components never leak into comparisons.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

// Day normalises t to midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current date at day precision.
func Today() time.Time {
	return Day(time.Now())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// Before reports whether a falls on an earlier day than b.
func Before(a, b time.Time) bool {
	return Day(a).Before(Day(b))
}

// After reports whether a falls on a later day than b.
func After(a, b time.Time) bool {
	return Day(a).After(Day(b))
}

// WithinRange reports whether d lies in the inclusive interval [start, end].
func WithinRange(d, start, end time.Time) bool {
	day := Day(d)
	return !day.Before(Day(start)) && !day.After(Day(end))
}

// DaysBetween returns the signed number of whole days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// AddDays shifts t by n days.
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// AddWeeks shifts t by n weeks.
func AddWeeks(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, 7*n)
}

// AddMonths shifts t by n months. Go's AddDate rolls overflowing days into
// the next month (Jan 31 + 1 month = Mar 2/3), so the day is clamped to the
// target month's length first.
func AddMonths(t time.Time, n int) time.Time {
	d := Day(t)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := d.Day()
	if max := DaysInMonth(first.Year(), first.Month()); day > max {
		day = max
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// AddYears shifts t by n years with the same day clamping as AddMonths.
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, 12*n)
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(y int, m time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfWeek returns the most recent day on or before t whose weekday is
// first.
func StartOfWeek(t time.Time, first time.Weekday) time.Time {
	d := Day(t)
	offset := (int(d.Weekday()) - int(first) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// EndOfWeek returns the last day of the display week containing t.
func EndOfWeek(t time.Time, first time.Weekday) time.Time {
	return StartOfWeek(t, first).AddDate(0, 0, 6)
}

// EachDay enumerates every day in the inclusive interval [start, end] in
// order. Returns nil when end precedes start.
func EachDay(start, end time.Time) []time.Time {
	s, e := Day(start), Day(end)
	if e.Before(s) {
		return nil
	}
	out := make([]time.Time, 0, DaysBetween(s, e)+1)
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// WeekdayLabels returns the seven short weekday names ordered from first.
func WeekdayLabels(first time.Weekday) []string {
	out := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(first) + i) % 7)
		out = append(out, wd.String()[:2])
	}
	return out
}

// Format renders d using the given Go time layout.
func Format(d time.Time, layout string) string {
	return Day(d).Format(layout)
}

// Parse parses s against the given Go time layout at day precision. The
// parse is strict: the rendered result must round-trip to the input, so
// partial or sloppy text ("3/1/20" under 02/01/2006) is rejected.
func Parse(s, layout string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("parse date: empty input")
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	d := Day(t)
	if d.Format(layout) != s {
		return time.Time{}, fmt.Errorf("parse date %q: not in layout %q", s, layout)
	}
	return d, nil
}

// Valid reports whether s parses under layout.
func Valid(s, layout string) bool {
	_, err := Parse(s, layout)
	return err == nil
}

// MatchMonth resolves free text to a calendar month, tolerating prefixes and
// small typos ("jan", "Febuary"). The closest month within an edit distance
// of 2 wins; ties go to the earlier month.
func MatchMonth(s string) (time.Month, bool) {
	q := strings.ToLower(strings.TrimSpace(s))
	if q == "" {
		return 0, false
	}
	best := time.Month(0)
	bestDist := 3
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if strings.HasPrefix(name, q) {
			return m, true
		}
		if d := levenshtein.ComputeDistance(q, name); d < bestDist {
			best, bestDist = m, d
		}
	}
	if best == 0 {
		return 0, false
	}
	return best, true
}
