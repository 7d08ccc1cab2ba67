// Package datepicker is the stateful engine behind an interactive date-range
// picker. It reconciles the committed range, the hovered date, keyboard
// focus, free-text input, and the visible month window into one consistent
// picture, and emits a normalized range to the host on every successful
// commit.
//
// The engine is synchronous and single-owner: every gesture (click, hover,
// key, text change) runs to completion on the calling goroutine, and derived
// state (hover preview, text mirror, window placement) is recomputed by
// explicit derivation calls after each mutation. The only time-based
// primitive is the key-repeat throttle, which is cancelled on key-up and on
// teardown.
package datepicker

import (
	"time"

	"github.com/Plholder/datepicker-hooks/internal/calendar"
	"github.com/Plholder/datepicker-hooks/internal/throttle"
)

// Picker holds the five state slices of one picker instance. Create it with
// New; it is not safe for concurrent mutation, matching its event-driven,
// single-owner model.
type Picker struct {
	opts Options
	cons constraints

	selected  Range
	side      Side
	hovered   *HoveredDate
	potential *PotentialRange
	focused   *time.Time
	inputs    InputValues
	months    []Month

	throttle *throttle.Throttle
	listener *ListenerHandle

	onDatesChange func(start, end *time.Time)
}

// New builds a picker from opts with defaults resolved. A seeded range is
// adopted as-is; the initial selection side derives from it.
func New(opts Options) *Picker {
	now := time.Now()
	opts = opts.normalize(now)

	p := &Picker{
		opts:          opts,
		cons:          opts.constraints(),
		throttle:      throttle.New(opts.KeyThrottle),
		onDatesChange: opts.OnDatesChange,
	}
	if opts.InitialStart != nil {
		d := calendar.Day(*opts.InitialStart)
		p.selected.Start = &d
	}
	if opts.InitialEnd != nil {
		d := calendar.Day(*opts.InitialEnd)
		p.selected.End = &d
	}
	p.side = initialSide(p.selected)

	anchor := calendar.Day(now)
	switch {
	case opts.InitialVisibleMonth != nil:
		anchor = calendar.Day(*opts.InitialVisibleMonth)
	case p.selected.Start != nil:
		anchor = *p.selected.Start
	}
	p.months = buildWindow(anchor, opts.NumberOfMonths, opts.FirstDayOfWeek.Weekday(), opts.Padded)
	p.syncInputs()
	return p
}

// recompute re-derives the dependent slices after a mutation. Derivations
// are pure, so redundant calls are harmless.
func (p *Picker) recompute() {
	p.refreshHover()
}

// ---------------------------------------------------------------------------
// Read-only state
// ---------------------------------------------------------------------------

// Selected returns the committed range.
func (p *Picker) Selected() Range {
	if p == nil {
		return Range{}
	}
	return p.selected.clone()
}

// Side returns which endpoint the next gesture targets.
func (p *Picker) Side() Side {
	if p == nil {
		return SideNone
	}
	return p.side
}

// Months returns the visible month window in display order.
func (p *Picker) Months() []Month {
	if p == nil {
		return nil
	}
	return append([]Month(nil), p.months...)
}

// WeekdayLabels returns the seven column headers ordered from the configured
// first day of the week.
func (p *Picker) WeekdayLabels() []string {
	if p == nil {
		return nil
	}
	return calendar.WeekdayLabels(p.opts.FirstDayOfWeek.Weekday())
}

// Hovered returns the hover state, nil when no date is hovered.
func (p *Picker) Hovered() *HoveredDate {
	if p == nil || p.hovered == nil {
		return nil
	}
	h := *p.hovered
	return &h
}

// Potential returns the live preview range, nil when no relevant preview
// exists.
func (p *Picker) Potential() *PotentialRange {
	if p == nil || p.potential == nil {
		return nil
	}
	pr := *p.potential
	return &pr
}

// Focused returns the keyboard-focused date, nil before the first keyboard
// interaction or after a window re-anchor.
func (p *Picker) Focused() *time.Time {
	if p == nil || p.focused == nil {
		return nil
	}
	d := *p.focused
	return &d
}

// Inputs returns the textual mirror of both endpoints.
func (p *Picker) Inputs() InputValues {
	if p == nil {
		return InputValues{}
	}
	return p.inputs
}

// InputFormat returns the Go layout the text fields use.
func (p *Picker) InputFormat() string {
	if p == nil {
		return DefaultInputFormat
	}
	return p.opts.InputFormat
}

// ---------------------------------------------------------------------------
// Per-date presentation descriptor
// ---------------------------------------------------------------------------

// DayState is everything a host needs to render one day cell.
type DayState struct {
	Disabled         bool
	Focused          bool
	Selected         bool
	SelectedStart    bool
	SelectedEnd      bool
	InPotentialRange bool
	PotentialError   *ValidationError
}

// DayState computes the presentation descriptor for a date.
func (p *Picker) DayState(d time.Time) DayState {
	if p == nil {
		return DayState{}
	}
	day := calendar.Day(d)
	st := DayState{
		Disabled: classifyDate(day, p.cons, p.committedEndpoint()) != nil,
		Focused:  p.focused != nil && calendar.SameDay(*p.focused, day),
	}
	if p.selected.Start != nil && calendar.SameDay(*p.selected.Start, day) {
		st.SelectedStart = true
	}
	if p.selected.End != nil && calendar.SameDay(*p.selected.End, day) {
		st.SelectedEnd = true
	}
	if p.selected.Start != nil && p.selected.End != nil {
		st.Selected = calendar.WithinRange(day, *p.selected.Start, *p.selected.End)
	} else {
		st.Selected = st.SelectedStart || st.SelectedEnd
	}
	if p.potential != nil && calendar.WithinRange(day, p.potential.Start, p.potential.End) {
		st.InPotentialRange = true
		st.PotentialError = p.potential.Error
	}
	return st
}

// ---------------------------------------------------------------------------
// Imperative operations
// ---------------------------------------------------------------------------

// Reset discards the selection, hover, and focus state and re-targets the
// start endpoint. The visible window is left in place.
func (p *Picker) Reset() {
	if p == nil {
		return
	}
	p.selected = Range{}
	p.side = SideStart
	p.hovered = nil
	p.potential = nil
	p.focused = nil
	p.syncInputs()
	if p.onDatesChange != nil {
		p.onDatesChange(nil, nil)
	}
}

// GoToDate jumps the visible window so its first month contains d. An
// explicit re-anchor clears keyboard focus.
func (p *Picker) GoToDate(d time.Time) {
	if p == nil {
		return
	}
	p.months = buildWindow(d, p.opts.NumberOfMonths, p.opts.FirstDayOfWeek.Weekday(), p.opts.Padded)
	p.focused = nil
}

// NextMonths shifts the visible window forward one step.
func (p *Picker) NextMonths() {
	p.shiftWindow(1)
}

// PreviousMonths shifts the visible window back one step.
func (p *Picker) PreviousMonths() {
	p.shiftWindow(-1)
}

func (p *Picker) shiftWindow(step int) {
	if p == nil {
		return
	}
	p.months = scrollWindow(p.months, step, p.opts.FirstDayOfWeek.Weekday(), p.opts.Padded)
}

// Close tears the picker down: the keyboard registration is released and the
// pending throttle timer cancelled.
func (p *Picker) Close() {
	if p == nil {
		return
	}
	if p.listener != nil {
		p.listener.Release()
	}
	p.throttle.Stop()
}
