package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/streaks/internal/calendar"
	"github.com/julianstephens/streaks/internal/constants"
	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/utils"
)

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

func dayOfMonth(date string) string {
	if len(date) < 10 {
		return date
	}
	return strings.TrimPrefix(date[8:10], "0")
}

// StateGlyph returns the symbol used for an overview state
func StateGlyph(s calendar.CompletionState) string {
	switch s {
	case calendar.StateAll:
		return DoneStyle.Render(GlyphDone)
	case calendar.StateSome:
		return PartialStyle.Render(GlyphPartial)
	default:
		return MutedStyle.Render(GlyphNone)
	}
}

// Overview draws the aggregate month view as a Monday-first calendar grid.
// selected, if non-empty, is highlighted.
func Overview(goal models.Goal, month calendar.Month, o calendar.Overview, selected string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(goal.Title+" · "+month.Title()) + "\n")
	if o.NoHabits {
		b.WriteString(MutedStyle.Render(constants.NoHabitsNotice) + "\n")
		return b.String()
	}

	b.WriteString(MutedStyle.Render(strings.Join(weekdayHeader, "  ")) + "\n")

	offset := (int(month.FirstWeekday()) + 6) % 7
	cells := make([]string, 0, offset+len(o.Cells))
	for i := 0; i < offset; i++ {
		cells = append(cells, "   ")
	}
	for _, c := range o.Cells {
		cell := fmt.Sprintf("%2s", dayOfMonth(c.Date)) + StateGlyph(c.State)
		if c.Date == selected {
			cell = SelectedStyle.Render(fmt.Sprintf("%2s", dayOfMonth(c.Date))) + StateGlyph(c.State)
		}
		cells = append(cells, cell)
	}

	for i := 0; i < len(cells); i += 7 {
		end := i + 7
		if end > len(cells) {
			end = len(cells)
		}
		b.WriteString(strings.Join(cells[i:end], " ") + "\n")
	}

	b.WriteString(MutedStyle.Render(fmt.Sprintf("%s all  %s some  %s none", GlyphDone, GlyphPartial, GlyphNone)) + "\n")
	return b.String()
}

// Matrix draws one row per habit with a cell for each day of the view
func Matrix(goal models.Goal, month calendar.Month, m calendar.Matrix, selected string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(goal.Title+" · "+month.Title()) + "\n")
	if m.NoHabits {
		b.WriteString(MutedStyle.Render(constants.NoHabitsNotice) + "\n")
		return b.String()
	}

	width := 0
	for _, row := range m.Rows {
		if w := lipgloss.Width(row.Habit.Title); w > width {
			width = w
		}
	}
	label := lipgloss.NewStyle().Width(width + 1)

	header := make([]string, len(m.Dates))
	for i, d := range m.Dates {
		day := fmt.Sprintf("%2s", dayOfMonth(d))
		if d == selected {
			day = SelectedStyle.Render(day)
		}
		header[i] = day
	}
	b.WriteString(label.Render("") + MutedStyle.Render(strings.Join(header, " ")) + "\n")

	for _, row := range m.Rows {
		cells := make([]string, len(row.Cells))
		for i, done := range row.Cells {
			if done {
				cells[i] = " " + DoneStyle.Render(GlyphDone)
			} else {
				cells[i] = " " + MutedStyle.Render(GlyphNone)
			}
		}
		b.WriteString(label.Render(row.Habit.Title) + strings.Join(cells, " ") + "\n")
	}
	return b.String()
}

// Day draws the task list of one goal on one date. cursor is the index of
// the highlighted task, or -1 for none.
func Day(d calendar.DayDetail, cursor int) string {
	var b strings.Builder
	title := d.Goal.Title + " · " + d.Date
	if d.Weekday != "" {
		title += " (" + d.Weekday + ")"
	}
	b.WriteString(TitleStyle.Render(title) + "\n")

	if d.BeforeStart {
		b.WriteString(MutedStyle.Render("Goal was not set for this date.") + "\n")
		return b.String()
	}
	if !d.Scheduled {
		b.WriteString(MutedStyle.Render("Not a scheduled day for this goal.") + "\n")
	}
	if len(d.Tasks) == 0 {
		b.WriteString(MutedStyle.Render(constants.NoHabitsNotice) + "\n")
		return b.String()
	}

	for i, t := range d.Tasks {
		prefix := ""
		if cursor >= 0 {
			prefix = "  "
			if i == cursor {
				prefix = "> "
			}
		}
		switch {
		case t.Completed:
			b.WriteString(prefix + DoneStyle.Render(GlyphDone) + " " + t.Habit.Title + "\n")
		case t.Missed:
			b.WriteString(prefix + MissedStyle.Render(GlyphMissed) + " " + t.Habit.Title + "\n")
		default:
			b.WriteString(prefix + MutedStyle.Render(GlyphOpen) + " " + t.Habit.Title + "\n")
		}
	}
	return b.String()
}

// DateLabel formats a day key as "Friday, March 15"
func DateLabel(date string) string {
	t, err := utils.ParseDay(date, nil)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2")
}
