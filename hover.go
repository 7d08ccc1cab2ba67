package datepicker

import (
	"time"

	"github.com/Plholder/datepicker-hooks/internal/calendar"
)

// HoveredDate is the date under the pointer together with its standalone
// validity under the single-date rules.
type HoveredDate struct {
	Date  time.Time
	Error *ValidationError
}

// PotentialRange previews the range that committing the hovered date would
// produce. It exists only while exactly one endpoint is committed, the
// opposite side is being picked, and the hovered date lies strictly beyond
// the committed endpoint.
type PotentialRange struct {
	Start time.Time
	End   time.Time
	Error *ValidationError
}

// HoverDate sets the hovered date and recomputes the preview state. The
// derivation is pure: hovering the same date twice with unchanged selection
// yields the same result.
func (p *Picker) HoverDate(d time.Time) {
	if p == nil {
		return
	}
	day := calendar.Day(d)
	p.hovered = &HoveredDate{Date: day, Error: classifyDate(day, p.cons, p.committedEndpoint())}
	p.potential = p.derivePotential(day)
}

// ClearHover drops hover and preview state, as on pointer-leave.
func (p *Picker) ClearHover() {
	if p == nil {
		return
	}
	p.hovered = nil
	p.potential = nil
}

// committedEndpoint returns the lone committed endpoint when exactly one
// exists, else nil. It is the fixed-range reference for hover validity.
func (p *Picker) committedEndpoint() *time.Time {
	switch {
	case p.selected.Start != nil && p.selected.End == nil:
		return p.selected.Start
	case p.selected.Start == nil && p.selected.End != nil:
		return p.selected.End
	}
	return nil
}

// derivePotential forms the preview range for a hovered day, or nil when no
// relevant preview exists. Hovering on the wrong side of the committed
// endpoint (a degenerate interval) clears the preview rather than flagging
// it.
func (p *Picker) derivePotential(day time.Time) *PotentialRange {
	switch p.side {
	case SideEnd:
		if p.selected.Start == nil || p.selected.End != nil {
			return nil
		}
		start := calendar.Day(*p.selected.Start)
		if !day.After(start) {
			return nil
		}
		return &PotentialRange{Start: start, End: day, Error: classifyRange(start, day, p.cons)}
	case SideStart:
		if p.selected.End == nil || p.selected.Start != nil {
			return nil
		}
		end := calendar.Day(*p.selected.End)
		if !day.Before(end) {
			return nil
		}
		return &PotentialRange{Start: day, End: end, Error: classifyRange(day, end, p.cons)}
	}
	return nil
}

// refreshHover re-derives hover state after a selection change, keeping the
// preview consistent with the new range without requiring pointer movement.
func (p *Picker) refreshHover() {
	if p.hovered == nil {
		return
	}
	p.HoverDate(p.hovered.Date)
}
