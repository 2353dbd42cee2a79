// Package tracker composes the cache, the remote store and the pure
// aggregation functions into the operations the CLI and TUI call.
package tracker

import (
	"time"

	"github.com/julianstephens/streaks/internal/calendar"
	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/streak"
	"github.com/julianstephens/streaks/internal/utils"
)

// Task is one habit as it appears on the today screen
type Task struct {
	Habit     models.Habit
	Completed bool
}

// Summary is everything the today screen shows for one goal
type Summary struct {
	Goal        models.Goal
	Date        string
	Scheduled   bool
	BeforeStart bool
	Tasks       []Task
	Done        int
	Streak      int
}

// AllDone reports whether every task is completed; false when there are none
func (s Summary) AllDone() bool {
	return len(s.Tasks) > 0 && s.Done == len(s.Tasks)
}

// ScheduledToday returns the goals active on today's weekday, in input order
func ScheduledToday(goals []models.Goal, today time.Time) []models.Goal {
	var out []models.Goal
	for _, g := range goals {
		if g.ScheduledOn(today.Weekday()) {
			out = append(out, g)
		}
	}
	return out
}

// DefaultGoal picks the goal to show first: the first one scheduled today,
// else the first goal. It reports false when there are no goals.
func DefaultGoal(goals []models.Goal, today time.Time) (models.Goal, bool) {
	if scheduled := ScheduledToday(goals, today); len(scheduled) > 0 {
		return scheduled[0], true
	}
	if len(goals) > 0 {
		return goals[0], true
	}
	return models.Goal{}, false
}

// TodayTasks lists the goal's habits with their completion state on today
func TodayTasks(goal models.Goal, habits []models.Habit, logs []models.CompletionLog, today time.Time) []Task {
	day := utils.DayKey(today)
	idx := calendar.BuildIndex(logs, goal.ID, day)

	goalHabits := models.HabitsForGoal(habits, goal.ID)
	tasks := make([]Task, 0, len(goalHabits))
	for _, h := range goalHabits {
		tasks = append(tasks, Task{Habit: h, Completed: idx.Completed(h.ID, day)})
	}
	return tasks
}

// Summarize builds the today view of one goal, streak included
func Summarize(goal models.Goal, habits []models.Habit, logs []models.CompletionLog, today time.Time) Summary {
	s := Summary{
		Goal:        goal,
		Date:        utils.DayKey(today),
		Scheduled:   goal.ScheduledOn(today.Weekday()),
		BeforeStart: goal.BeforeStart(utils.DayKey(today), today.Location()),
		Tasks:       TodayTasks(goal, habits, logs, today),
		Streak:      streak.Compute(goal, habits, logs, today),
	}
	for _, t := range s.Tasks {
		if t.Completed {
			s.Done++
		}
	}
	return s
}
