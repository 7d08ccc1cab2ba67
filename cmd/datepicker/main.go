// Command datepicker is an interactive terminal demo of the date-range
// picker engine: a lipgloss-rendered month grid driven by keyboard focus,
// with editable start/end text fields and a fuzzy month jump.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	datepicker "github.com/Plholder/datepicker-hooks"
	"github.com/Plholder/datepicker-hooks/internal/calendar"
	"github.com/Plholder/datepicker-hooks/internal/config"
)

type focusZone int

const (
	zoneCalendar focusZone = iota
	zoneStartInput
	zoneEndInput
	zoneJump
)

type model struct {
	picker *datepicker.Picker
	handle *datepicker.ListenerHandle
	keys   keyMap

	zone       focusZone
	startInput textinput.Model
	endInput   textinput.Model
	jumpInput  textinput.Model

	status string
	width  int
}

func newModel(cfg config.Config) (model, error) {
	opts, err := pickerOptions(cfg.Picker)
	if err != nil {
		return model{}, err
	}

	m := model{keys: newKeyMap(), status: "Ready"}
	m.picker = datepicker.New(opts)
	m.handle = m.picker.Mount()

	m.startInput = newDateInput("start", m.picker.InputFormat())
	m.endInput = newDateInput("end", m.picker.InputFormat())
	m.jumpInput = textinput.New()
	m.jumpInput.Placeholder = "month [year], e.g. jan 2027"
	m.jumpInput.CharLimit = 24
	m.jumpInput.Width = 24

	m.syncInputsFromPicker()
	return m, nil
}

func newDateInput(placeholder, layout string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = len(layout) + 2
	in.Width = len(layout) + 2
	return in
}

func pickerOptions(pc config.PickerConfig) (datepicker.Options, error) {
	opts := datepicker.Options{
		NumberOfMonths: pc.NumberOfMonths,
		InputFormat:    pc.InputFormat,
		MinRangeDays:   pc.MinRangeDays,
		MaxRangeDays:   pc.MaxRangeDays,
		FixRangeDays:   pc.FixRangeDays,
		Padded:         pc.Padded,
	}
	if wd, err := config.ParseWeekday(pc.FirstDayOfWeek); err == nil {
		opts.FirstDayOfWeek = weekStart(wd)
	}
	if pc.MinDate != "" {
		d, err := time.Parse("2006-01-02", pc.MinDate)
		if err != nil {
			return opts, fmt.Errorf("min date: %w", err)
		}
		opts.MinDate = d
	}
	if pc.MaxDate != "" {
		d, err := time.Parse("2006-01-02", pc.MaxDate)
		if err != nil {
			return opts, fmt.Errorf("max date: %w", err)
		}
		opts.MaxDate = d
	}
	if pc.BlockedFile != "" {
		spans, err := config.LoadBlockedSpans(pc.BlockedFile)
		if err != nil {
			return opts, err
		}
		opts.Unavailable = config.Predicate(spans)
	}
	return opts, nil
}

func weekStart(wd time.Weekday) datepicker.WeekStart {
	// WeekStart numbers days from Monday; time.Weekday from Sunday.
	return datepicker.WeekStart((int(wd) + 6) % 7)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && m.zone == zoneCalendar {
		m.handle.Release()
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.NextZone) {
		return m.cycleZone(), nil
	}

	switch m.zone {
	case zoneCalendar:
		return m.handleCalendarKey(msg)
	case zoneStartInput:
		return m.handleInputKey(msg, datepicker.SideStart)
	case zoneEndInput:
		return m.handleInputKey(msg, datepicker.SideEnd)
	case zoneJump:
		return m.handleJumpKey(msg)
	}
	return m, nil
}

func (m model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.dispatchStep(datepicker.StepDayBack)
	case key.Matches(msg, m.keys.Right):
		m.dispatchStep(datepicker.StepDayForward)
	case key.Matches(msg, m.keys.Up):
		m.dispatchStep(datepicker.StepWeekBack)
	case key.Matches(msg, m.keys.Down):
		m.dispatchStep(datepicker.StepWeekForward)
	case key.Matches(msg, m.keys.PageUp):
		m.dispatchStep(datepicker.StepMonthBack)
	case key.Matches(msg, m.keys.PageDown):
		m.dispatchStep(datepicker.StepMonthForward)
	case key.Matches(msg, m.keys.Select):
		if f := m.picker.Focused(); f != nil {
			m.picker.ClickDate(*f)
			m.status = "Picked " + calendar.Format(*f, m.picker.InputFormat())
		}
	case key.Matches(msg, m.keys.Preview):
		if f := m.picker.Focused(); f != nil {
			m.picker.HoverDate(*f)
			m.status = "Previewing " + calendar.Format(*f, m.picker.InputFormat())
		}
	case key.Matches(msg, m.keys.Cancel):
		m.picker.ClearHover()
		m.status = "Preview cleared"
	case key.Matches(msg, m.keys.PrevMonth):
		m.picker.PreviousMonths()
	case key.Matches(msg, m.keys.NextMonth):
		m.picker.NextMonths()
	case key.Matches(msg, m.keys.Reset):
		m.picker.Reset()
		m.status = "Selection reset"
	case key.Matches(msg, m.keys.Jump):
		m.zone = zoneJump
		m.jumpInput.Focus()
		m.status = "Jump to month"
	}
	m.syncInputsFromPicker()
	return m, nil
}

// dispatchStep routes a focus movement through the global keyboard listener,
// pairing the key-down with an immediate key-up: a discrete terminal
// keypress should never be swallowed by the repeat throttle.
func (m *model) dispatchStep(step datepicker.FocusStep) {
	datepicker.DispatchKeyDown(step)
	datepicker.DispatchKeyUp()
}

func (m model) handleInputKey(msg tea.KeyMsg, side datepicker.Side) (tea.Model, tea.Cmd) {
	in := m.activeInput()
	if key.Matches(msg, m.keys.Cancel) {
		m.picker.Blur(side)
		m.syncInputsFromPicker()
		m.zone = zoneCalendar
		in.Blur()
		m.status = "Ready"
		return m, nil
	}

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	m.picker.SetText(side, in.Value())
	return m, cmd
}

func (m model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) {
		m.zone = zoneCalendar
		m.jumpInput.Blur()
		m.jumpInput.SetValue("")
		m.status = "Ready"
		return m, nil
	}
	if key.Matches(msg, m.keys.Select) {
		if target, ok := parseJump(m.jumpInput.Value()); ok {
			m.picker.GoToDate(target)
			m.status = "Jumped to " + target.Format("January 2006")
		} else {
			m.status = "No month matches " + strconv.Quote(m.jumpInput.Value())
		}
		m.zone = zoneCalendar
		m.jumpInput.Blur()
		m.jumpInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

// parseJump resolves "jan", "Febuary 2027", etc. against fuzzy month names,
// defaulting the year to the current one.
func parseJump(s string) (time.Time, bool) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return time.Time{}, false
	}
	month, ok := calendar.MatchMonth(fields[0])
	if !ok {
		return time.Time{}, false
	}
	year := time.Now().Year()
	if len(fields) > 1 {
		y, err := strconv.Atoi(fields[1])
		if err != nil || y < 1 || y > 9999 {
			return time.Time{}, false
		}
		year = y
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
}

func (m model) cycleZone() model {
	m.startInput.Blur()
	m.endInput.Blur()
	m.jumpInput.Blur()

	switch m.zone {
	case zoneCalendar:
		m.zone = zoneStartInput
		m.picker.FocusText(datepicker.SideStart)
		m.startInput.Focus()
	case zoneStartInput:
		m.picker.Blur(datepicker.SideStart)
		m.zone = zoneEndInput
		m.picker.FocusText(datepicker.SideEnd)
		m.endInput.Focus()
	default:
		m.picker.Blur(datepicker.SideEnd)
		m.zone = zoneCalendar
	}
	m.syncInputsFromPicker()
	return m
}

func (m *model) activeInput() *textinput.Model {
	if m.zone == zoneEndInput {
		return &m.endInput
	}
	return &m.startInput
}

// syncInputsFromPicker pushes the engine's text mirror into the unfocused
// bubbles; a focused field keeps whatever the user is typing.
func (m *model) syncInputsFromPicker() {
	values := m.picker.Inputs()
	if !m.startInput.Focused() {
		m.startInput.SetValue(values.Start)
	}
	if !m.endInput.Focused() {
		m.endInput.SetValue(values.End)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "datepicker:", err)
		os.Exit(1)
	}
	m, err := newModel(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "datepicker:", err)
		os.Exit(1)
	}
	defer m.picker.Close()

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "datepicker:", err)
		os.Exit(1)
	}
}
