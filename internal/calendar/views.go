package calendar

import (
	"time"

	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/utils"
)

// CompletionState is the aggregate state of one day in the overview
type CompletionState int

const (
	StateNone CompletionState = iota
	StateSome
	StateAll
)

func (s CompletionState) String() string {
	switch s {
	case StateAll:
		return "all"
	case StateSome:
		return "some"
	default:
		return "none"
	}
}

// StateFor classifies a day from its completed and total habit counts.
// A goal without habits is always StateNone.
func StateFor(completed, total int) CompletionState {
	switch {
	case total > 0 && completed == total:
		return StateAll
	case completed > 0 && completed < total:
		return StateSome
	default:
		return StateNone
	}
}

// Option configures a view
type Option func(*viewConfig)

type viewConfig struct {
	index    *Index
	onSelect func(date string)
}

// WithIndex reuses an index already built for the view's goal
func WithIndex(idx Index) Option {
	return func(c *viewConfig) {
		c.index = &idx
	}
}

// WithDateSelect registers a callback invoked with the selected date key
func WithDateSelect(fn func(date string)) Option {
	return func(c *viewConfig) {
		c.onSelect = fn
	}
}

func newConfig(opts []Option) viewConfig {
	var cfg viewConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c viewConfig) indexFor(goalID string, logs []models.CompletionLog, dates []string) Index {
	if c.index != nil {
		return *c.index
	}
	return BuildIndex(logs, goalID, dates...)
}

type selector struct {
	dates    []string
	onSelect func(date string)
}

// Select invokes the date callback when date belongs to the view.
// It reports whether the callback ran.
func (s selector) Select(date string) bool {
	if s.onSelect == nil {
		return false
	}
	for _, d := range s.dates {
		if d == date {
			s.onSelect(date)
			return true
		}
	}
	return false
}

// MatrixRow holds one habit's completion cells, aligned with Matrix.Dates
type MatrixRow struct {
	Habit models.Habit
	Cells []bool
}

// Matrix is the per-habit completion grid for one goal
type Matrix struct {
	selector
	GoalID string
	Dates  []string
	Rows   []MatrixRow
	// NoHabits distinguishes "nothing to show" from "everything incomplete"
	NoHabits bool
}

// BuildMatrix renders one row per habit of the goal (creation order) and one
// column per date.
func BuildMatrix(goal models.Goal, habits []models.Habit, logs []models.CompletionLog, dates []string, opts ...Option) Matrix {
	cfg := newConfig(opts)
	m := Matrix{
		selector: selector{dates: dates, onSelect: cfg.onSelect},
		GoalID:   goal.ID,
		Dates:    dates,
	}

	goalHabits := models.HabitsForGoal(habits, goal.ID)
	if len(goalHabits) == 0 {
		m.NoHabits = true
		return m
	}

	idx := cfg.indexFor(goal.ID, logs, dates)
	m.Rows = make([]MatrixRow, 0, len(goalHabits))
	for _, h := range goalHabits {
		row := MatrixRow{Habit: h, Cells: make([]bool, len(dates))}
		for i, d := range dates {
			row.Cells[i] = idx.Completed(h.ID, d)
		}
		m.Rows = append(m.Rows, row)
	}
	return m
}

// OverviewCell is one day of the aggregate heatmap
type OverviewCell struct {
	Date      string
	Completed int
	Total     int
	State     CompletionState
}

// Overview is the per-day aggregate completion heatmap for one goal
type Overview struct {
	selector
	GoalID   string
	Total    int
	Cells    []OverviewCell
	NoHabits bool
}

// BuildOverview renders one cell per date. Only the goal's live habits are
// counted, so logs left behind by deleted habits cannot inflate a day.
func BuildOverview(goal models.Goal, habits []models.Habit, logs []models.CompletionLog, dates []string, opts ...Option) Overview {
	cfg := newConfig(opts)
	goalHabits := models.HabitsForGoal(habits, goal.ID)
	total := len(goalHabits)

	o := Overview{
		selector: selector{dates: dates, onSelect: cfg.onSelect},
		GoalID:   goal.ID,
		Total:    total,
		Cells:    make([]OverviewCell, 0, len(dates)),
		NoHabits: total == 0,
	}

	var idx Index
	if total > 0 {
		idx = cfg.indexFor(goal.ID, logs, dates)
	}
	for _, d := range dates {
		completed := 0
		if total > 0 {
			completed = idx.CompletedAmong(goalHabits, d)
		}
		o.Cells = append(o.Cells, OverviewCell{
			Date:      d,
			Completed: completed,
			Total:     total,
			State:     StateFor(completed, total),
		})
	}
	return o
}

// DayTask is one habit's state on a given day
type DayTask struct {
	Habit     models.Habit
	Completed bool
	// Missed is set for past days the habit was not completed
	Missed bool
}

// DayDetail describes one goal on one date
type DayDetail struct {
	Goal        models.Goal
	Date        string
	Weekday     string
	Scheduled   bool
	IsPast      bool
	BeforeStart bool
	Tasks       []DayTask
}

// BuildDayDetail lists the goal's habits for date. Dates before the goal's
// effective start are flagged and carry no tasks.
func BuildDayDetail(goal models.Goal, habits []models.Habit, logs []models.CompletionLog, date string, today time.Time) DayDetail {
	loc := today.Location()
	detail := DayDetail{
		Goal:        goal,
		Date:        date,
		IsPast:      date < utils.DayKey(today),
		BeforeStart: goal.BeforeStart(date, loc),
	}
	if day, err := utils.ParseDay(date, loc); err == nil {
		detail.Weekday = day.Weekday().String()
		detail.Scheduled = goal.ScheduledOn(day.Weekday())
	}
	if detail.BeforeStart {
		return detail
	}

	idx := BuildIndex(logs, goal.ID, date)
	for _, h := range models.HabitsForGoal(habits, goal.ID) {
		done := idx.Completed(h.ID, date)
		detail.Tasks = append(detail.Tasks, DayTask{
			Habit:     h,
			Completed: done,
			Missed:    detail.IsPast && !done,
		})
	}
	return detail
}
