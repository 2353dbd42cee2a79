package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/streaks/internal/constants"
)

// ErrInvalidRecord is returned when a record read from storage fails validation
var ErrInvalidRecord = errors.New("invalid record")

// Goal is a named recurring objective with a set of active weekdays
type Goal struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Weekdays  WeekdaySet `json:"days"`
	Quote     string     `json:"quote,omitempty"`
	StartDate string     `json:"start_date,omitempty"` // YYYY-MM-DD, optional
	CreatedAt time.Time  `json:"created_at"`
	OwnerID   string     `json:"owner_id"`
}

// Habit is an individual recurring task belonging to exactly one goal
type Habit struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	GoalID    string    `json:"goal_id"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   string    `json:"owner_id"`
}

// CompletionLog records whether a habit was completed on a calendar day.
// GoalID is denormalized from the habit.
type CompletionLog struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	GoalID    string    `json:"goal_id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Completed bool      `json:"completed"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LogID returns the canonical identifier for the (habit, date) pair
func LogID(habitID, date string) string {
	return habitID + "_" + date
}

// ScheduledOn reports whether the goal is active on the given weekday
func (g Goal) ScheduledOn(wd time.Weekday) bool {
	return g.Weekdays.Contains(wd)
}

// DisplayQuote returns the goal's quote, falling back to the default one
func (g Goal) DisplayQuote() string {
	if strings.TrimSpace(g.Quote) == "" {
		return constants.DefaultQuote
	}
	return g.Quote
}

// Validate checks the fields every stored goal must carry.
// An empty weekday set is allowed; such a goal simply never has a streak.
func (g Goal) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return fmt.Errorf("%w: goal has no id", ErrInvalidRecord)
	}
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("%w: goal %s has no title", ErrInvalidRecord, g.ID)
	}
	if g.StartDate != "" {
		if _, err := time.Parse(constants.DateFormat, g.StartDate); err != nil {
			return fmt.Errorf("%w: goal %s has malformed start date %q", ErrInvalidRecord, g.ID, g.StartDate)
		}
	}
	for _, d := range g.Weekdays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: goal %s has unknown weekday %d", ErrInvalidRecord, g.ID, d)
		}
	}
	return nil
}

// Validate checks the fields every stored habit must carry
func (h Habit) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return fmt.Errorf("%w: habit has no id", ErrInvalidRecord)
	}
	if strings.TrimSpace(h.Title) == "" {
		return fmt.Errorf("%w: habit %s has no title", ErrInvalidRecord, h.ID)
	}
	if strings.TrimSpace(h.GoalID) == "" {
		return fmt.Errorf("%w: habit %s has no goal", ErrInvalidRecord, h.ID)
	}
	return nil
}

// Validate checks the fields every stored completion log must carry
func (l CompletionLog) Validate() error {
	if strings.TrimSpace(l.HabitID) == "" {
		return fmt.Errorf("%w: log %s has no habit", ErrInvalidRecord, l.ID)
	}
	if _, err := time.Parse(constants.DateFormat, l.Date); err != nil {
		return fmt.Errorf("%w: log %s has malformed date %q", ErrInvalidRecord, l.ID, l.Date)
	}
	return nil
}

// HabitsForGoal returns the habits belonging to goalID in creation order.
// Habits without a goal never match.
func HabitsForGoal(habits []Habit, goalID string) []Habit {
	var out []Habit
	if goalID == "" {
		return out
	}
	for _, h := range habits {
		if h.GoalID == goalID {
			out = append(out, h)
		}
	}
	SortHabits(out)
	return out
}

// SortHabits orders habits by creation time, then ID
func SortHabits(habits []Habit) {
	sort.SliceStable(habits, func(i, j int) bool {
		if !habits[i].CreatedAt.Equal(habits[j].CreatedAt) {
			return habits[i].CreatedAt.Before(habits[j].CreatedAt)
		}
		return habits[i].ID < habits[j].ID
	})
}

// SortGoals orders goals by creation time, then ID
func SortGoals(goals []Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		if !goals[i].CreatedAt.Equal(goals[j].CreatedAt) {
			return goals[i].CreatedAt.Before(goals[j].CreatedAt)
		}
		return goals[i].ID < goals[j].ID
	})
}

// EffectiveStart returns the first day (YYYY-MM-DD) of the goal's active window:
// the explicit start date, else the creation day in loc. It returns "" when
// neither is known, meaning the window is unbounded.
func (g Goal) EffectiveStart(loc *time.Location) string {
	if g.StartDate != "" {
		return g.StartDate
	}
	if g.CreatedAt.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return g.CreatedAt.In(loc).Format(constants.DateFormat)
}

// BeforeStart reports whether day falls before the goal's active window
func (g Goal) BeforeStart(day string, loc *time.Location) bool {
	start := g.EffectiveStart(loc)
	return start != "" && day < start
}
