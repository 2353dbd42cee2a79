package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/streaks/internal/render"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.viewToday())
	case StateCalendar:
		content = docStyle.Render(m.monthView.View())
	case StateDay:
		content = docStyle.Render(m.viewDay())
	case StateGoals:
		content = docStyle.Render(m.goalList.View())
	case StateAddGoal, StateAddHabit:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.activeTab()
	var tabs []string
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusError {
		return warningStyle.Render("⚠ " + m.status)
	}
	return infoStyle.Render(m.status)
}

func (m Model) viewToday() string {
	goal, ok := m.currentGoal()
	if !ok {
		return "No goals yet.\nOpen the Goals tab and press 'a' to add one."
	}

	header := render.MutedStyle.Render(render.DateLabel(m.tracker.Today()))
	goals := m.tracker.Goals()
	if len(goals) > 1 {
		pos := 1
		for i, g := range goals {
			if g.ID == goal.ID {
				pos = i + 1
			}
		}
		header += render.MutedStyle.Render(fmt.Sprintf("  ·  goal %d/%d", pos, len(goals)))
	}
	return header + "\n\n" + render.Summary(m.tracker.Summary(goal), m.cursor)
}

func (m Model) viewDay() string {
	goal, ok := m.currentGoal()
	if !ok {
		return ""
	}
	detail, err := m.tracker.Day(goal, m.selected)
	if err != nil {
		return dangerStyle.Render(err.Error())
	}
	return render.Day(detail, m.dayCursor)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q with its habits and history?", m.goalToDelete.Title)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
