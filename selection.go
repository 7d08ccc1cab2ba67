package datepicker

import (
	"time"

	"github.com/Plholder/datepicker-hooks/internal/calendar"
)

// Side identifies which endpoint the next click, text edit, or hover
// targets. SideNone means both ends are fixed and the picker is idle.
type Side int

const (
	SideStart Side = iota
	SideEnd
	SideNone
)

func (s Side) String() string {
	switch s {
	case SideStart:
		return "start"
	case SideEnd:
		return "end"
	case SideNone:
		return "none"
	}
	return "unknown"
}

// Range is the committed selection. Either, both, or neither endpoint may be
// present; ordering is enforced by validation at commit time, not by the
// type.
type Range struct {
	Start *time.Time
	End   *time.Time
}

func (r Range) clone() Range {
	out := Range{}
	if r.Start != nil {
		d := calendar.Day(*r.Start)
		out.Start = &d
	}
	if r.End != nil {
		d := calendar.Day(*r.End)
		out.End = &d
	}
	return out
}

// initialSide derives the starting selection state from seeded endpoints: a
// lone start means the end is being picked next, everything else starts from
// the start side.
func initialSide(r Range) Side {
	if r.Start != nil && r.End == nil {
		return SideEnd
	}
	return SideStart
}

// ClickDate feeds a date-click into the selection state machine. An invalid
// resulting range declines silently: no commit, no callback, no state
// change.
func (p *Picker) ClickDate(d time.Time) {
	if p == nil {
		return
	}
	day := calendar.Day(d)

	candidate := p.selected.clone()
	switch p.side {
	case SideNone:
		// Idle clicks always restart the range at the clicked date.
		candidate = Range{Start: &day}
	case SideStart:
		candidate.Start = &day
	case SideEnd:
		candidate.End = &day
	}
	if !validateRange(candidate, p.cons) {
		return
	}

	hadStart := p.selected.Start != nil
	p.commit(candidate)

	if p.side == SideEnd && hadStart {
		p.side = SideNone
	} else {
		p.side = SideEnd
	}
	p.ensureVisible(day)
	p.recompute()
}

// commitEndpoint replaces a single endpoint, used by the text-sync path. The
// selection side is left untouched: typing a date into a field does not
// advance the click flow.
func (p *Picker) commitEndpoint(side Side, d time.Time) bool {
	day := calendar.Day(d)
	candidate := p.selected.clone()
	switch side {
	case SideStart:
		candidate.Start = &day
	case SideEnd:
		candidate.End = &day
	default:
		return false
	}
	if !validateRange(candidate, p.cons) {
		return false
	}
	p.commit(candidate)
	p.ensureVisible(day)
	p.recompute()
	return true
}

// commit replaces the authoritative range, resynchronizes the text mirror,
// and notifies the host.
func (p *Picker) commit(r Range) {
	p.selected = r.clone()
	p.syncInputs()
	if p.onDatesChange != nil {
		p.onDatesChange(p.selected.Start, p.selected.End)
	}
}

// ensureVisible re-derives the month window only when d is outside the
// months currently rendered, minimizing visual churn after commits.
func (p *Picker) ensureVisible(d time.Time) {
	if windowContains(p.months, d) {
		return
	}
	p.months = buildWindow(d, p.opts.NumberOfMonths, p.opts.FirstDayOfWeek.Weekday(), p.opts.Padded)
}
