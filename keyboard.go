package datepicker

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Plholder/datepicker-hooks/internal/calendar"
)

// FocusStep is a keyboard-driven focus movement at day, week, or month
// granularity.
type FocusStep int

const (
	StepDayForward FocusStep = iota
	StepDayBack
	StepWeekForward
	StepWeekBack
	StepMonthForward
	StepMonthBack
)

// MoveFocus applies a focus movement immediately, bypassing the key-repeat
// throttle. The first movement with no focused date focuses the first
// non-padding day of the first visible month instead of moving.
func (p *Picker) MoveFocus(step FocusStep) {
	if p == nil {
		return
	}
	if p.focused == nil {
		p.focusInitial()
		p.mirrorFocusToInput()
		return
	}

	next := *p.focused
	switch step {
	case StepDayForward:
		next = calendar.AddDays(next, 1)
	case StepDayBack:
		next = calendar.AddDays(next, -1)
	case StepWeekForward:
		next = calendar.AddWeeks(next, 1)
	case StepWeekBack:
		next = calendar.AddWeeks(next, -1)
	case StepMonthForward:
		next = calendar.AddMonths(next, 1)
	case StepMonthBack:
		next = calendar.AddMonths(next, -1)
	}
	p.focused = &next
	p.scrollToFocus()
	p.mirrorFocusToInput()
}

func (p *Picker) focusInitial() {
	if len(p.months) == 0 {
		return
	}
	for _, d := range p.months[0].Days {
		if !d.Padding {
			day := d.Date
			p.focused = &day
			return
		}
	}
}

// scrollToFocus shifts the window by one step when focus leaves it: back
// when focus precedes the first month, forward when it passes the last.
func (p *Picker) scrollToFocus() {
	if p.focused == nil || len(p.months) == 0 {
		return
	}
	first := p.months[0].First
	last := p.months[len(p.months)-1].Last()
	if p.focused.Before(first) {
		p.months = scrollWindow(p.months, -1, p.opts.FirstDayOfWeek.Weekday(), p.opts.Padded)
	} else if p.focused.After(last) {
		p.months = scrollWindow(p.months, 1, p.opts.FirstDayOfWeek.Weekday(), p.opts.Padded)
	}
}

// mirrorFocusToInput reflects the focused date into the text field of the
// actively targeted endpoint. Focus acts as a live preview of keyboard
// selection; nothing is committed.
func (p *Picker) mirrorFocusToInput() {
	if p.focused == nil {
		return
	}
	text := calendar.Format(*p.focused, p.opts.InputFormat)
	switch p.side {
	case SideStart:
		p.inputs.Start = text
	case SideEnd:
		p.inputs.End = text
	}
}

// keyDown is the throttled dispatch entry: held keys move focus once per
// throttle window rather than once per repeat event.
func (p *Picker) keyDown(step FocusStep) {
	p.throttle.Invoke(func() {
		p.MoveFocus(step)
	})
}

// keyUp cancels the pending throttle window so the next key-down fires
// immediately.
func (p *Picker) keyUp() {
	p.throttle.Cancel()
}

// ---------------------------------------------------------------------------
// Process-wide keyboard listener registry
// ---------------------------------------------------------------------------

// ListenerHandle is the scoped registration of a picker with the
// process-wide keyboard dispatch. Exactly one acquire/release pair is active
// per mounted picker; Release is idempotent.
type ListenerHandle struct {
	id     uuid.UUID
	picker *Picker
}

var keyboardListeners = struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*ListenerHandle
}{byID: make(map[uuid.UUID]*ListenerHandle)}

// Mount registers the picker for global keyboard dispatch and returns the
// handle that releases it. Mounting an already-mounted picker returns the
// existing handle.
func (p *Picker) Mount() *ListenerHandle {
	if p == nil {
		return nil
	}
	keyboardListeners.mu.Lock()
	defer keyboardListeners.mu.Unlock()
	if p.listener != nil {
		return p.listener
	}
	h := &ListenerHandle{id: uuid.New(), picker: p}
	keyboardListeners.byID[h.id] = h
	p.listener = h
	return h
}

// Release removes the registration and cancels any pending throttle timer so
// no stale callback fires after teardown.
func (h *ListenerHandle) Release() {
	if h == nil || h.picker == nil {
		return
	}
	keyboardListeners.mu.Lock()
	delete(keyboardListeners.byID, h.id)
	if h.picker.listener == h {
		h.picker.listener = nil
	}
	keyboardListeners.mu.Unlock()
	h.picker.throttle.Stop()
	h.picker = nil
}

// DispatchKeyDown fans a key-down out to every mounted picker.
func DispatchKeyDown(step FocusStep) {
	for _, p := range mountedPickers() {
		p.keyDown(step)
	}
}

// DispatchKeyUp fans a key-up out to every mounted picker.
func DispatchKeyUp() {
	for _, p := range mountedPickers() {
		p.keyUp()
	}
}

func mountedPickers() []*Picker {
	keyboardListeners.mu.Lock()
	defer keyboardListeners.mu.Unlock()
	out := make([]*Picker, 0, len(keyboardListeners.byID))
	for _, h := range keyboardListeners.byID {
		if h.picker != nil {
			out = append(out, h.picker)
		}
	}
	return out
}
