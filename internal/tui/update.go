package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streaks/internal/cache"
	"github.com/julianstephens/streaks/internal/calendar"
	"github.com/julianstephens/streaks/internal/forms"
	"github.com/julianstephens/streaks/internal/logger"
	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/render"
	"github.com/julianstephens/streaks/internal/tracker"
	"github.com/julianstephens/streaks/internal/tui/components/goallist"
	"github.com/julianstephens/streaks/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Results and resizes apply whatever screen is showing
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.goalList.SetSize(msg.Width-h, msg.Height-v-4)
		m.monthView.SetSize(msg.Width-h, msg.Height-v-4)
		return m, nil

	case toggleResultMsg:
		if msg.err != nil {
			m.setError(toggleFailure(msg.habit, msg.date, msg.err))
		}
		m.syncViews()
		return m, nil

	case savedMsg:
		if msg.err != nil {
			logger.Warn("Failed to save change", "error", msg.err)
			m.setError(msg.err.Error())
		} else {
			m.setStatus(msg.status)
			if msg.goalID != "" {
				m.goalID = msg.goalID
			}
		}
		m.syncViews()
		return m, nil

	case refreshedMsg:
		if msg.err != nil {
			m.setError("Reload failed: " + msg.err.Error())
		} else {
			m.setStatus("Reloaded")
		}
		m.syncViews()
		return m, nil
	}

	switch m.state {
	case StateAddGoal, StateAddHabit:
		return m, m.updateForm(msg)
	case StateConfirmDelete:
		return m, m.handleConfirmDelete(msg)
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case goallist.AddGoalMsg:
		m.goalForm = &forms.GoalFormModel{}
		m.form = forms.NewGoalForm(m.goalForm)
		m.previousState = m.state
		m.state = StateAddGoal
		return m, m.form.Init()

	case goallist.DeleteGoalMsg:
		m.goalToDelete = msg.Goal
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case goallist.SelectGoalMsg:
		m.goalID = msg.Goal.ID
		m.cursor = 0
		m.state = StateToday
		m.syncViews()
		return m, nil

	case tea.MouseMsg:
		if m.state == StateCalendar {
			m.monthView, cmd = m.monthView.Update(msg)
		}
		return m, cmd

	case tea.KeyMsg:
		// Let the list own every key while filtering
		if m.state == StateGoals && m.goalList.Filtering() {
			m.goalList, cmd = m.goalList.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.activeTab() + 1) % tabCount
			m.syncViews()
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.activeTab() + tabCount - 1) % tabCount
			m.syncViews()
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			tr := m.tracker
			return m, func() tea.Msg {
				return refreshedMsg{err: tr.Refresh(context.Background())}
			}
		}

		switch m.state {
		case StateToday:
			cmd = m.handleTodayKeys(msg)
		case StateCalendar:
			cmd = m.handleCalendarKeys(msg)
		case StateDay:
			cmd = m.handleDayKeys(msg)
		case StateGoals:
			m.goalList, cmd = m.goalList.Update(msg)
		}
		m.syncViews()
		return m, cmd
	}

	if m.state == StateGoals {
		m.goalList, cmd = m.goalList.Update(msg)
	}
	return m, cmd
}

// activeTab maps sub-screens to the tab they belong to
func (m Model) activeTab() SessionState {
	switch m.state {
	case StateDay:
		return StateCalendar
	case StateAddGoal, StateConfirmDelete:
		return StateGoals
	case StateAddHabit:
		return StateToday
	}
	return m.state
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusError = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusError = true
}

// toggle applies the flip to the cache now and persists it in the returned
// command. Rejected dates never reach the cache.
func (m *Model) toggle(habit models.Habit, date string) tea.Cmd {
	p, err := m.tracker.BeginToggle(habit, date)
	if err != nil {
		m.setError(err.Error())
		return nil
	}
	m.setStatus("")
	tr := m.tracker
	return func() tea.Msg {
		return toggleResultMsg{habit: habit, date: date, err: tr.Commit(context.Background(), p)}
	}
}

// toggleFailure describes a failed save, saying whether the screen was reverted
func toggleFailure(habit models.Habit, date string, err error) string {
	var rb *cache.RollbackError
	if errors.As(err, &rb) && !rb.Restored {
		return fmt.Sprintf("Could not save %q for %s", habit.Title, date)
	}
	return fmt.Sprintf("Could not save %q for %s, change rolled back", habit.Title, date)
}

// cycleGoal moves to the next or previous goal, wrapping around
func (m *Model) cycleGoal(delta int) {
	goals := m.tracker.Goals()
	if len(goals) == 0 {
		return
	}
	current, _ := m.currentGoal()
	idx := 0
	for i, g := range goals {
		if g.ID == current.ID {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(goals)) % len(goals)
	m.goalID = goals[idx].ID
	m.cursor = 0
	m.dayCursor = 0
}

func clamp(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

func (m *Model) handleTodayKeys(msg tea.KeyMsg) tea.Cmd {
	goal, ok := m.currentGoal()
	if !ok {
		return nil
	}
	tasks := m.tracker.Summary(goal).Tasks

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = clamp(m.cursor-1, len(tasks))
	case key.Matches(msg, m.keys.Down):
		m.cursor = clamp(m.cursor+1, len(tasks))
	case key.Matches(msg, m.keys.PrevGoal):
		m.cycleGoal(-1)
	case key.Matches(msg, m.keys.NextGoal):
		m.cycleGoal(1)
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(tasks) {
			return m.toggle(tasks[m.cursor].Habit, m.tracker.Today())
		}
	case key.Matches(msg, m.keys.Add):
		m.habitForm = &forms.HabitFormModel{}
		m.form = forms.NewHabitForm(m.habitForm)
		m.previousState = m.state
		m.state = StateAddHabit
		return m.form.Init()
	}
	return nil
}

// moveSelected shifts the selected calendar day, following it across months
func (m *Model) moveSelected(days int) {
	t, err := utils.ParseDay(m.selected, m.tracker.Location())
	if err != nil {
		t = m.tracker.Now()
	}
	t = t.AddDate(0, 0, days)
	m.selected = utils.DayKey(t)
	m.month = calendar.MonthOf(t)
}

// setMonth shows month, selecting today if it falls inside, else the 1st
func (m *Model) setMonth(month calendar.Month) {
	m.month = month
	if calendar.MonthOf(m.tracker.Now()) == month {
		m.selected = m.tracker.Today()
		return
	}
	m.selected = month.Days()[0]
}

func (m *Model) handleCalendarKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveSelected(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelected(1)
	case key.Matches(msg, m.keys.Up):
		m.moveSelected(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveSelected(7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.setMonth(m.month.Prev())
	case key.Matches(msg, m.keys.NextMonth):
		m.setMonth(m.month.Next())
	case key.Matches(msg, m.keys.PrevGoal):
		m.cycleGoal(-1)
	case key.Matches(msg, m.keys.NextGoal):
		m.cycleGoal(1)
	case key.Matches(msg, m.keys.View):
		m.matrixView = !m.matrixView
	case key.Matches(msg, m.keys.Enter):
		if _, ok := m.currentGoal(); ok {
			m.dayCursor = 0
			m.state = StateDay
		}
	}
	return nil
}

func (m *Model) handleDayKeys(msg tea.KeyMsg) tea.Cmd {
	goal, ok := m.currentGoal()
	if !ok {
		m.state = StateCalendar
		return nil
	}
	detail, err := m.tracker.Day(goal, m.selected)
	if err != nil {
		m.setError(err.Error())
		m.state = StateCalendar
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = StateCalendar
	case key.Matches(msg, m.keys.Up):
		m.dayCursor = clamp(m.dayCursor-1, len(detail.Tasks))
	case key.Matches(msg, m.keys.Down):
		m.dayCursor = clamp(m.dayCursor+1, len(detail.Tasks))
	case key.Matches(msg, m.keys.Left):
		m.moveSelected(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelected(1)
	case key.Matches(msg, m.keys.Toggle):
		if detail.BeforeStart {
			m.setError(tracker.ErrBeforeStart.Error())
			return nil
		}
		if m.dayCursor < len(detail.Tasks) {
			return m.toggle(detail.Tasks[m.dayCursor].Habit, m.selected)
		}
	}
	return nil
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		save := m.saveForm()
		m.state = m.previousState
		return tea.Batch(cmd, save)
	case huh.StateAborted:
		m.state = m.previousState
	}
	return cmd
}

// saveForm returns the command persisting the completed form
func (m *Model) saveForm() tea.Cmd {
	tr := m.tracker
	switch m.state {
	case StateAddGoal:
		in := m.goalForm.Input()
		return func() tea.Msg {
			g, err := tr.CreateGoal(context.Background(), in)
			return savedMsg{status: "Added goal " + g.Title, goalID: g.ID, err: err}
		}
	case StateAddHabit:
		goal, ok := m.currentGoal()
		if !ok {
			return nil
		}
		title := m.habitForm.Title
		return func() tea.Msg {
			h, err := tr.AddHabit(context.Background(), goal.ID, title)
			return savedMsg{status: fmt.Sprintf("Added habit %s to %s", h.Title, goal.Title), err: err}
		}
	}
	return nil
}

func (m *Model) handleConfirmDelete(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		goal := m.goalToDelete
		tr := m.tracker
		m.goalToDelete = models.Goal{}
		m.state = m.previousState
		return func() tea.Msg {
			err := tr.DeleteGoal(context.Background(), goal.ID)
			return savedMsg{status: "Deleted goal " + goal.Title, err: err}
		}
	case "n", "N", "esc":
		m.goalToDelete = models.Goal{}
		m.state = m.previousState
	}
	return nil
}

// syncViews pushes cache state into the list and calendar components
func (m *Model) syncViews() {
	goals := m.tracker.Goals()
	items := make([]goallist.Item, 0, len(goals))
	for _, g := range goals {
		items = append(items, goallist.Item{
			Goal:   g,
			Habits: len(m.tracker.Cache().GoalHabits(g.ID)),
			Streak: m.tracker.Streak(g),
		})
	}
	m.goalList.SetItems(items)

	goal, ok := m.currentGoal()
	if !ok {
		m.monthView.SetContent("No goals yet. Open the Goals tab and press 'a' to add one.")
		return
	}
	m.goalID = goal.ID
	m.cursor = clamp(m.cursor, len(m.tracker.Cache().GoalHabits(goal.ID)))
	if m.matrixView {
		m.monthView.SetContent(render.Matrix(goal, m.month, m.tracker.Matrix(goal, m.month), m.selected))
	} else {
		m.monthView.SetContent(render.Overview(goal, m.month, m.tracker.Overview(goal, m.month), m.selected))
	}
}
