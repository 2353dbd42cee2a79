// Package tui is the interactive tracker: today's tasks, the month calendar
// and goal management. Completion toggles are applied to the cache in Update
// and persisted by a tea.Cmd, so the screen never waits on storage.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streaks/internal/calendar"
	"github.com/julianstephens/streaks/internal/forms"
	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/tracker"
	"github.com/julianstephens/streaks/internal/tui/components/goallist"
	"github.com/julianstephens/streaks/internal/tui/components/monthview"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateCalendar
	StateGoals
	StateDay
	StateAddGoal
	StateAddHabit
	StateConfirmDelete
)

// tabCount is the number of tab states at the start of SessionState
const tabCount = 3

var tabTitles = []string{"Today", "Calendar", "Goals"}

// toggleResultMsg reports the outcome of a persisted toggle
type toggleResultMsg struct {
	habit models.Habit
	date  string
	err   error
}

// savedMsg reports the outcome of a goal or habit change
type savedMsg struct {
	status string
	goalID string
	err    error
}

type refreshedMsg struct {
	err error
}

type Model struct {
	tracker       *tracker.Tracker
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	goalList      goallist.Model
	monthView     monthview.Model

	goalID     string
	cursor     int
	dayCursor  int
	month      calendar.Month
	selected   string
	matrixView bool

	form         *huh.Form
	goalForm     *forms.GoalFormModel
	habitForm    *forms.HabitFormModel
	goalToDelete models.Goal

	status      string
	statusError bool
	quitting    bool
	width       int
	height      int
}

func NewModel(tr *tracker.Tracker) Model {
	m := Model{
		tracker:   tr,
		state:     StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		goalList:  goallist.New(nil, 0, 0),
		monthView: monthview.New(0, 0),
		month:     calendar.MonthOf(tr.Now()),
		selected:  tr.Today(),
	}
	if g, ok := tr.DefaultGoal(); ok {
		m.goalID = g.ID
	}
	m.syncViews()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// currentGoal returns the goal on screen, falling back to the default goal
// when the remembered one is gone
func (m Model) currentGoal() (models.Goal, bool) {
	if g, ok := m.tracker.Cache().Goal(m.goalID); ok {
		return g, true
	}
	return m.tracker.DefaultGoal()
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Toggle, m.keys.PrevGoal, m.keys.NextGoal, m.keys.Add)
	case StateCalendar:
		keys = append(keys, m.keys.Enter, m.keys.View, m.keys.PrevMonth, m.keys.NextMonth)
	case StateDay:
		keys = append(keys, m.keys.Toggle, m.keys.Back)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter, m.keys.Back}

	var actions []key.Binding
	switch m.state {
	case StateToday:
		actions = []key.Binding{m.keys.Toggle, m.keys.PrevGoal, m.keys.NextGoal, m.keys.Add}
	case StateCalendar:
		actions = []key.Binding{m.keys.View, m.keys.PrevMonth, m.keys.NextMonth, m.keys.PrevGoal, m.keys.NextGoal}
	case StateDay:
		actions = []key.Binding{m.keys.Toggle}
	}
	return [][]key.Binding{global, navigation, actions}
}
