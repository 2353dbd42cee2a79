// Package streak counts the current run of fully completed scheduled days.
package streak

import (
	"time"

	"github.com/julianstephens/streaks/internal/calendar"
	"github.com/julianstephens/streaks/internal/constants"
	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/utils"
)

// Compute returns the number of consecutive scheduled days, ending today,
// on which every habit of the goal was completed. habits may hold other
// goals' habits; only the goal's own are considered.
//
// The walk goes backward one calendar day at a time from today and stops at
// the later of the goal's effective start and the lookback bound. Days not in
// the goal's weekday set are skipped without breaking the run. The first
// scheduled day with any habit not completed ends the walk.
func Compute(goal models.Goal, habits []models.Habit, logs []models.CompletionLog, today time.Time) int {
	habits = models.HabitsForGoal(habits, goal.ID)
	if len(goal.Weekdays) == 0 || len(habits) == 0 {
		return 0
	}

	idx := calendar.BuildIndex(logs, goal.ID)
	cursor := utils.StartOfDay(today)
	boundary := Boundary(goal, cursor)

	streak := 0
	for ; !cursor.Before(boundary); cursor = cursor.AddDate(0, 0, -1) {
		if !goal.ScheduledOn(cursor.Weekday()) {
			continue
		}
		if !idx.AllCompleted(habits, utils.DayKey(cursor)) {
			break
		}
		streak++
	}
	return streak
}

// Boundary returns the earliest day the walk may visit: the goal's effective
// start or the lookback bound, whichever is later.
func Boundary(goal models.Goal, today time.Time) time.Time {
	day := utils.StartOfDay(today)
	boundary := day.AddDate(0, 0, -constants.StreakLookbackDays)

	start := goal.EffectiveStart(day.Location())
	if start == "" {
		return boundary
	}
	startDay, err := utils.ParseDay(start, day.Location())
	if err != nil {
		return boundary
	}
	if startDay.After(boundary) {
		return startDay
	}
	return boundary
}
