package datepicker

import (
	"time"

	"github.com/Plholder/datepicker-hooks/internal/calendar"
)

// classifyDate runs the single-date rule set in precedence order: minimum
// bound, maximum bound, blocked date, then fixed-range distance from the
// committed opposite endpoint. committed may be nil when no endpoint exists.
func classifyDate(d time.Time, c constraints, committed *time.Time) *ValidationError {
	day := calendar.Day(d)
	// The lower bound is one-day exclusive: minDate itself is selectable,
	// anything before it is not.
	if day.Before(c.minDate) {
		return invalid(ReasonLessThanMinDate)
	}
	if !c.maxDate.IsZero() && day.After(calendar.Day(c.maxDate)) {
		return invalid(ReasonGreaterThanMaxDate)
	}
	if c.blocked != nil && c.blocked(day) {
		return invalid(ReasonBlockedDate)
	}
	if c.fixRangeDays > 0 && committed != nil {
		ref := calendar.Day(*committed)
		if day.Before(calendar.AddDays(ref, -c.fixRangeDays)) || day.After(calendar.AddDays(ref, c.fixRangeDays)) {
			return invalid(ReasonViolatesFixRange)
		}
	}
	return nil
}

// classifyRange runs the two-sided rule set on the inclusive interval
// [start, end]: span against the minimum and maximum durations, then a scan
// for blocked days inside the interval.
func classifyRange(start, end time.Time, c constraints) *ValidationError {
	span := calendar.DaysBetween(start, end)
	if c.minRangeDays > 0 && span <= c.minRangeDays {
		return invalid(ReasonLessThanMinRange)
	}
	if c.maxRangeDays > 0 && span > c.maxRangeDays {
		return invalid(ReasonGreaterThanMaxRange)
	}
	if c.blocked != nil {
		for _, d := range calendar.EachDay(start, end) {
			if c.blocked(d) {
				return invalid(ReasonContainsBlockedDate)
			}
		}
	}
	return nil
}

// validateRange is the sole commit gate. A range with no endpoints, or a
// single endpoint, is always valid: it merely advances selection state. A
// two-sided range must be ordered, have both endpoints clean under the
// single-date rules, and have a clean interval.
func validateRange(r Range, c constraints) bool {
	if r.Start == nil || r.End == nil {
		return true
	}
	start, end := calendar.Day(*r.Start), calendar.Day(*r.End)
	if end.Before(start) {
		return false
	}
	if classifyDate(start, c, r.End) != nil {
		return false
	}
	if classifyDate(end, c, r.Start) != nil {
		return false
	}
	return classifyRange(start, end, c) == nil
}
