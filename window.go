package datepicker

import (
	"time"

	"github.com/Plholder/datepicker-hooks/internal/calendar"
)

// Day is one cell of a rendered month. Padding days belong to an adjacent
// month and are shown for visual continuity only; they are never selectable.
type Day struct {
	Date    time.Time
	Padding bool
}

// Month is one entry of the visible window: the month anchored at First,
// with its days in display order.
type Month struct {
	First time.Time
	Days  []Day
}

// Last returns the final day of the month.
func (m Month) Last() time.Time {
	return calendar.EndOfMonth(m.First)
}

// Contains reports whether d falls inside the month proper, padding
// excluded.
func (m Month) Contains(d time.Time) bool {
	return calendar.SameMonth(m.First, d)
}

// buildWindow enumerates numberOfMonths consecutive months starting at the
// month containing anchor. With padding enabled, each month's partial first
// and last display weeks are completed with adjacent-month days.
func buildWindow(anchor time.Time, numberOfMonths int, first time.Weekday, padded bool) []Month {
	if numberOfMonths <= 0 {
		numberOfMonths = 1
	}
	start := calendar.StartOfMonth(anchor)
	out := make([]Month, 0, numberOfMonths)
	for i := 0; i < numberOfMonths; i++ {
		out = append(out, buildMonth(calendar.AddMonths(start, i), first, padded))
	}
	return out
}

func buildMonth(monthFirst time.Time, first time.Weekday, padded bool) Month {
	monthLast := calendar.EndOfMonth(monthFirst)
	gridStart, gridEnd := monthFirst, monthLast
	if padded {
		gridStart = calendar.StartOfWeek(monthFirst, first)
		gridEnd = calendar.EndOfWeek(monthLast, first)
	}
	days := make([]Day, 0, calendar.DaysBetween(gridStart, gridEnd)+1)
	for _, d := range calendar.EachDay(gridStart, gridEnd) {
		days = append(days, Day{Date: d, Padding: !calendar.SameMonth(d, monthFirst)})
	}
	return Month{First: monthFirst, Days: days}
}

// scrollWindow shifts the window by step months, preserving its span and
// padding policy. A nil window scrolls from the current month.
func scrollWindow(window []Month, step int, first time.Weekday, padded bool) []Month {
	if len(window) == 0 {
		return buildWindow(calendar.AddMonths(calendar.Today(), step), 1, first, padded)
	}
	anchor := calendar.AddMonths(window[0].First, step)
	return buildWindow(anchor, len(window), first, padded)
}

// windowContains reports whether d falls inside any visible month proper.
func windowContains(window []Month, d time.Time) bool {
	for _, m := range window {
		if m.Contains(d) {
			return true
		}
	}
	return false
}
