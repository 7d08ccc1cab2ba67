package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	datepicker "github.com/Plholder/datepicker-hooks"
)

const dayCellWidth = 4

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Date range picker"))
	b.WriteString("\n\n")
	b.WriteString(m.renderInputs())
	b.WriteString("\n\n")
	b.WriteString(m.renderMonths())
	b.WriteString("\n")
	b.WriteString(m.renderSelection())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m model) renderInputs() string {
	start := labelStyle.Render("Start: ") + m.startInput.View()
	end := labelStyle.Render("End: ") + m.endInput.View()
	line := start + "   " + end
	if m.zone == zoneJump {
		line += "   " + labelStyle.Render("Jump: ") + m.jumpInput.View()
	}
	return line
}

func (m model) renderMonths() string {
	labels := m.picker.WeekdayLabels()
	cols := make([]string, 0, len(m.picker.Months()))
	for _, month := range m.picker.Months() {
		cols = append(cols, m.renderMonth(month, labels))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m model) renderMonth(month datepicker.Month, labels []string) string {
	var lines []string
	width := dayCellWidth * 7

	title := monthTitleStyle.Render(month.First.Format("January 2006"))
	lines = append(lines, padLine(centerLine(title, width), width))

	var header strings.Builder
	for _, l := range labels {
		header.WriteString(weekdayStyle.Render(padLine(l, dayCellWidth)))
	}
	lines = append(lines, header.String())

	var row strings.Builder
	for i, day := range month.Days {
		row.WriteString(m.renderDay(day))
		if (i+1)%7 == 0 {
			lines = append(lines, row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		lines = append(lines, padLine(row.String(), width))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (m model) renderDay(day datepicker.Day) string {
	cell := fmt.Sprintf("%3d ", day.Date.Day())
	if day.Padding {
		return dayPaddingStyle.Render(cell)
	}

	st := m.picker.DayState(day.Date)
	style := dayStyle
	switch {
	case st.Focused:
		style = dayFocusedStyle
	case st.SelectedStart || st.SelectedEnd:
		style = dayEndpointStyle
	case st.InPotentialRange && st.PotentialError != nil:
		style = dayBadStyle
	case st.InPotentialRange:
		style = dayPreviewStyle
	case st.Selected:
		style = daySelectedStyle
	case st.Disabled:
		style = dayDisabledStyle
	}
	return style.Render(cell)
}

func (m model) renderSelection() string {
	selected := m.picker.Selected()
	format := m.picker.InputFormat()

	startText, endText := "—", "—"
	if selected.Start != nil {
		startText = selected.Start.Format(format)
	}
	if selected.End != nil {
		endText = selected.End.Format(format)
	}
	line := labelStyle.Render("Selected: ") + startText + " → " + endText +
		labelStyle.Render("  picking: ") + m.picker.Side().String()

	if pr := m.picker.Potential(); pr != nil {
		preview := pr.Start.Format(format) + " → " + pr.End.Format(format)
		if pr.Error != nil {
			preview += " " + errorStyle.Render(string(pr.Error.Reason))
		}
		line += labelStyle.Render("  preview: ") + preview
	}
	if h := m.picker.Hovered(); h != nil && h.Error != nil {
		line += " " + errorStyle.Render(string(h.Error.Reason))
	}
	return line
}

func (m model) renderFooter() string {
	hints := []string{
		"←/→ ↑/↓ pgup/pgdn move", "enter pick", "v preview", "h/l scroll",
		"g jump", "r reset", "tab focus", "q quit",
	}
	return footerStyle.Render(strings.Join(hints, " · "))
}

// padLine right-pads s with spaces to the given display width, counting
// styled text correctly.
func padLine(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func centerLine(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s
}
