package datepicker

import (
	"time"

	"github.com/Plholder/datepicker-hooks/internal/calendar"
)

// InputValues is the textual mirror of the committed range, one field per
// endpoint. A field may hold transiently unparseable text while the user is
// typing; absent endpoints render as empty strings.
type InputValues struct {
	Start string
	End   string
}

// SetText stores the raw text for one endpoint exactly as typed. When the
// text parses under the configured layout it becomes a commit attempt for
// that endpoint; unparseable text simply never reaches the commit path.
func (p *Picker) SetText(side Side, text string) {
	if p == nil {
		return
	}
	switch side {
	case SideStart:
		p.inputs.Start = text
	case SideEnd:
		p.inputs.End = text
	default:
		return
	}
	d, err := calendar.Parse(text, p.opts.InputFormat)
	if err != nil {
		return
	}
	if p.commitEndpoint(side, d) {
		// commit resynchronized both fields; restore the user's verbatim
		// text for the field still being edited.
		switch side {
		case SideStart:
			p.inputs.Start = text
		case SideEnd:
			p.inputs.End = text
		}
	}
}

// Blur forces resynchronization: whatever was typed is discarded and the
// field re-derives from the last validly committed range.
func (p *Picker) Blur(side Side) {
	if p == nil {
		return
	}
	switch side {
	case SideStart:
		p.inputs.Start = p.formatEndpoint(p.selected.Start)
	case SideEnd:
		p.inputs.End = p.formatEndpoint(p.selected.End)
	}
}

// FocusText targets the given endpoint for subsequent clicks, hovers, and
// keyboard movement, mirroring a user focusing that text field.
func (p *Picker) FocusText(side Side) {
	if p == nil || side == SideNone {
		return
	}
	p.side = side
	p.recompute()
}

// syncInputs re-derives both fields from the committed range.
func (p *Picker) syncInputs() {
	p.inputs.Start = p.formatEndpoint(p.selected.Start)
	p.inputs.End = p.formatEndpoint(p.selected.End)
}

func (p *Picker) formatEndpoint(d *time.Time) string {
	if d == nil {
		return ""
	}
	return calendar.Format(*d, p.opts.InputFormat)
}
