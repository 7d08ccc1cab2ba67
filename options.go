package datepicker

import (
	"time"

	"github.com/Plholder/datepicker-hooks/internal/calendar"
)

// DefaultInputFormat is the Go layout dates are rendered with and parsed
// against unless Options.InputFormat overrides it.
const DefaultInputFormat = "02/01/2006"

// DefaultKeyThrottle is the window applied to key-down dispatch so held keys
// move focus once per interval rather than once per repeat event.
const DefaultKeyThrottle = 500 * time.Millisecond

const defaultMinDateYearsBack = 300

// WeekStart selects the first day of a display week. The zero value is
// Monday, the documented default, so Options{} needs no explicit setting and
// Sunday starts remain expressible.
type WeekStart int

const (
	WeekStartMonday WeekStart = iota
	WeekStartTuesday
	WeekStartWednesday
	WeekStartThursday
	WeekStartFriday
	WeekStartSaturday
	WeekStartSunday
)

// Weekday converts w to the standard library's weekday numbering.
func (w WeekStart) Weekday() time.Weekday {
	if w < WeekStartMonday || w > WeekStartSunday {
		return time.Monday
	}
	return time.Weekday((int(w) + 1) % 7)
}

// Options configures a picker instance. The zero value is usable: two
// months, weeks starting Monday, dd/MM/yyyy input, a minimum date 300 years
// back, and no range constraints.
type Options struct {
	// InitialStart and InitialEnd pre-seed the committed range.
	InitialStart *time.Time
	InitialEnd   *time.Time

	// MinDate and MaxDate bound selectable dates. A zero MinDate defaults
	// to 300 years before now; a zero MaxDate means unbounded.
	MinDate time.Time
	MaxDate time.Time

	// MinRangeDays rejects ranges whose span is not strictly greater than
	// it. MaxRangeDays rejects spans strictly greater than it. FixRangeDays
	// limits how far a second endpoint may sit from a committed one in
	// either direction. Zero disables each constraint.
	MinRangeDays int
	MaxRangeDays int
	FixRangeDays int

	// UnavailableDates blocks an explicit set of days; Unavailable blocks
	// by predicate. Either or both may be set.
	UnavailableDates []time.Time
	Unavailable      func(time.Time) bool

	NumberOfMonths int
	FirstDayOfWeek WeekStart

	// InputFormat is a Go time layout for the text fields.
	InputFormat string

	// InitialVisibleMonth anchors the first rendered month. Defaults to the
	// initial start date, else today.
	InitialVisibleMonth *time.Time

	// Padded fills partial leading/trailing display weeks with adjacent
	// month days.
	Padded bool

	// KeyThrottle overrides the key-down throttle window. Negative disables
	// throttling; zero means DefaultKeyThrottle.
	KeyThrottle time.Duration

	// OnDatesChange fires after every successful commit with the normalized
	// range; endpoints are nil when absent.
	OnDatesChange func(start, end *time.Time)
}

// constraints is the validator's view of Options, with defaults resolved.
type constraints struct {
	minDate      time.Time
	maxDate      time.Time // zero = unbounded
	minRangeDays int
	maxRangeDays int
	fixRangeDays int
	blocked      func(time.Time) bool
}

func (o Options) normalize(now time.Time) Options {
	out := o
	if out.NumberOfMonths <= 0 {
		out.NumberOfMonths = 2
	}
	if out.FirstDayOfWeek < WeekStartMonday || out.FirstDayOfWeek > WeekStartSunday {
		out.FirstDayOfWeek = WeekStartMonday
	}
	if out.InputFormat == "" {
		out.InputFormat = DefaultInputFormat
	}
	if out.MinDate.IsZero() {
		out.MinDate = calendar.AddYears(now, -defaultMinDateYearsBack)
	}
	if out.KeyThrottle == 0 {
		out.KeyThrottle = DefaultKeyThrottle
	}
	if out.KeyThrottle < 0 {
		out.KeyThrottle = 0
	}
	return out
}

func (o Options) constraints() constraints {
	blockedSet := make(map[time.Time]bool, len(o.UnavailableDates))
	for _, d := range o.UnavailableDates {
		blockedSet[calendar.Day(d)] = true
	}
	pred := o.Unavailable
	return constraints{
		minDate:      calendar.Day(o.MinDate),
		maxDate:      o.MaxDate,
		minRangeDays: o.MinRangeDays,
		maxRangeDays: o.MaxRangeDays,
		fixRangeDays: o.FixRangeDays,
		blocked: func(d time.Time) bool {
			if blockedSet[calendar.Day(d)] {
				return true
			}
			return pred != nil && pred(calendar.Day(d))
		},
	}
}
