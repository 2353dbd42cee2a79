package calendar

import "github.com/julianstephens/streaks/internal/models"

// Index is a lookup over one goal's completion logs
type Index struct {
	// ByHabitAndDate maps habitID -> date -> completed
	ByHabitAndDate map[string]map[string]bool
	// CountByDate maps date -> number of habits completed that day
	CountByDate map[string]int
}

// BuildIndex indexes the logs belonging to goalID. Logs for other goals are
// ignored; habit references are not checked. When the same (habit, date)
// pair appears more than once, the later log in the slice wins. If dates are
// given, CountByDate covers exactly those dates.
func BuildIndex(logs []models.CompletionLog, goalID string, dates ...string) Index {
	idx := Index{
		ByHabitAndDate: make(map[string]map[string]bool),
		CountByDate:    make(map[string]int),
	}

	for _, log := range logs {
		if log.GoalID != goalID {
			continue
		}
		byDate, ok := idx.ByHabitAndDate[log.HabitID]
		if !ok {
			byDate = make(map[string]bool)
			idx.ByHabitAndDate[log.HabitID] = byDate
		}
		byDate[log.Date] = log.Completed
	}

	var inRange map[string]bool
	if len(dates) > 0 {
		inRange = make(map[string]bool, len(dates))
		for _, d := range dates {
			inRange[d] = true
			idx.CountByDate[d] = 0
		}
	}

	// Counted after de-duplication so a superseded log never counts twice.
	for _, byDate := range idx.ByHabitAndDate {
		for date, completed := range byDate {
			if !completed {
				continue
			}
			if inRange != nil && !inRange[date] {
				continue
			}
			idx.CountByDate[date]++
		}
	}

	return idx
}

// Completed reports whether habitID was logged as completed on date
func (idx Index) Completed(habitID, date string) bool {
	return idx.ByHabitAndDate[habitID][date]
}

// Count returns the number of completed habits on date
func (idx Index) Count(date string) int {
	return idx.CountByDate[date]
}

// CompletedAmong counts how many of habits were completed on date
func (idx Index) CompletedAmong(habits []models.Habit, date string) int {
	n := 0
	for _, h := range habits {
		if idx.Completed(h.ID, date) {
			n++
		}
	}
	return n
}

// AllCompleted reports whether every habit was completed on date.
// It is false for an empty habit list.
func (idx Index) AllCompleted(habits []models.Habit, date string) bool {
	if len(habits) == 0 {
		return false
	}
	for _, h := range habits {
		if !idx.Completed(h.ID, date) {
			return false
		}
	}
	return true
}
