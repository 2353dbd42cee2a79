package streak

import (
	"testing"
	"time"

	"github.com/julianstephens/streaks/internal/models"
)

var weekdays = models.WeekdaySet{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// friday is 2024-03-15
var friday = time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

func fixture() (models.Goal, []models.Habit) {
	goal := models.Goal{
		ID:        "g1",
		Title:     "Fitness",
		Weekdays:  weekdays,
		CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	habits := []models.Habit{
		{ID: "A", Title: "Run", GoalID: "g1"},
		{ID: "B", Title: "Stretch", GoalID: "g1"},
	}
	return goal, habits
}

func completed(habit string, days ...string) []models.CompletionLog {
	var logs []models.CompletionLog
	for _, d := range days {
		logs = append(logs, models.CompletionLog{
			ID:        models.LogID(habit, d),
			HabitID:   habit,
			GoalID:    "g1",
			Date:      d,
			Completed: true,
		})
	}
	return logs
}

var week = []string{"2024-03-11", "2024-03-12", "2024-03-13", "2024-03-14", "2024-03-15"}

func TestComputeFullWeek(t *testing.T) {
	goal, habits := fixture()
	logs := append(completed("A", week...), completed("B", week...)...)

	if got := Compute(goal, habits, logs, friday); got != 5 {
		t.Errorf("Compute() = %d, want 5", got)
	}
}

func TestComputeMissingWednesday(t *testing.T) {
	goal, habits := fixture()
	logs := completed("A", week...)
	logs = append(logs, completed("B", "2024-03-11", "2024-03-12", "2024-03-14", "2024-03-15")...)

	if got := Compute(goal, habits, logs, friday); got != 2 {
		t.Errorf("Compute() = %d, want 2", got)
	}
}

func TestComputeSkipsUnscheduledDays(t *testing.T) {
	goal, habits := fixture()
	// Previous Thu/Fri plus this week; the weekend in between has no logs.
	days := append([]string{"2024-03-07", "2024-03-08"}, week...)
	logs := append(completed("A", days...), completed("B", days...)...)

	if got := Compute(goal, habits, logs, friday); got != 7 {
		t.Errorf("Compute() = %d, want 7", got)
	}
}

func TestComputeTodayIncompleteBreaksImmediately(t *testing.T) {
	goal, habits := fixture()
	logs := append(completed("A", week...), completed("B", week[:4]...)...)

	if got := Compute(goal, habits, logs, friday); got != 0 {
		t.Errorf("Compute() = %d, want 0", got)
	}
}

func TestComputeExplicitFalseBreaks(t *testing.T) {
	goal, habits := fixture()
	logs := append(completed("A", week...), completed("B", week...)...)
	logs = append(logs, models.CompletionLog{HabitID: "B", GoalID: "g1", Date: "2024-03-14", Completed: false})

	if got := Compute(goal, habits, logs, friday); got != 1 {
		t.Errorf("Compute() = %d, want 1", got)
	}
}

func TestComputeEmptyInputs(t *testing.T) {
	goal, habits := fixture()
	logs := append(completed("A", week...), completed("B", week...)...)

	noDays := goal
	noDays.Weekdays = models.WeekdaySet{}
	if got := Compute(noDays, habits, logs, friday); got != 0 {
		t.Errorf("no weekdays: Compute() = %d, want 0", got)
	}
	if got := Compute(goal, nil, logs, friday); got != 0 {
		t.Errorf("no habits: Compute() = %d, want 0", got)
	}
}

func TestComputeStopsAtEffectiveStart(t *testing.T) {
	goal, habits := fixture()
	goal.StartDate = "2024-03-13"
	// Logs exist before the start; they must not be counted.
	logs := append(completed("A", week...), completed("B", week...)...)

	if got := Compute(goal, habits, logs, friday); got != 3 {
		t.Errorf("Compute() = %d, want 3", got)
	}
}

func TestComputeStartInFuture(t *testing.T) {
	goal, habits := fixture()
	goal.StartDate = "2024-03-18" // next Monday
	logs := append(completed("A", week...), completed("B", week...)...)

	if got := Compute(goal, habits, logs, friday); got != 0 {
		t.Errorf("Compute() = %d, want 0", got)
	}
	if !goal.BeforeStart("2024-03-15", time.UTC) {
		t.Error("Friday must be outside the active window")
	}
}

func TestComputeUsesCreatedAtWhenNoStartDate(t *testing.T) {
	goal, habits := fixture()
	goal.CreatedAt = time.Date(2024, 3, 14, 22, 0, 0, 0, time.UTC)
	logs := append(completed("A", week...), completed("B", week...)...)

	if got := Compute(goal, habits, logs, friday); got != 2 {
		t.Errorf("Compute() = %d, want 2", got)
	}
}

func TestComputeLookbackBound(t *testing.T) {
	goal, habits := fixture()
	goal.Weekdays = models.WeekdaySet{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}
	goal.CreatedAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	var days []string
	for d := 0; d < 400; d++ {
		days = append(days, friday.AddDate(0, 0, -d).Format("2006-01-02"))
	}
	logs := append(completed("A", days...), completed("B", days...)...)

	// today plus 200 days back, inclusive
	if got := Compute(goal, habits, logs, friday); got != 201 {
		t.Errorf("Compute() = %d, want 201", got)
	}
}

func TestComputeIgnoresOtherGoals(t *testing.T) {
	goal, habits := fixture()
	logs := completed("A", week...)
	for _, d := range week {
		logs = append(logs, models.CompletionLog{HabitID: "B", GoalID: "other", Date: d, Completed: true})
	}
	if got := Compute(goal, habits, logs, friday); got != 0 {
		t.Errorf("Compute() = %d, want 0", got)
	}
}

func TestComputeIgnoresOtherGoalsHabits(t *testing.T) {
	goal, habits := fixture()
	habits = append(habits, models.Habit{ID: "C", Title: "Read", GoalID: "g2"})
	logs := append(completed("A", week...), completed("B", week...)...)

	if got := Compute(goal, habits, logs, friday); got != 5 {
		t.Errorf("Compute() = %d, want 5", got)
	}
}

func TestComputeAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	goal, habits := fixture()
	goal.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, loc)
	// DST began on Sunday 2024-03-10
	days := []string{"2024-03-07", "2024-03-08", "2024-03-11", "2024-03-12"}
	logs := append(completed("A", days...), completed("B", days...)...)

	today := time.Date(2024, 3, 12, 8, 0, 0, 0, loc)
	if got := Compute(goal, habits, logs, today); got != 4 {
		t.Errorf("Compute() = %d, want 4", got)
	}
}

func TestBoundary(t *testing.T) {
	goal, _ := fixture()
	b := Boundary(goal, friday)
	if b.Format("2006-01-02") != "2024-01-01" {
		t.Errorf("Boundary() = %s, want created day 2024-01-01", b.Format("2006-01-02"))
	}

	goal.CreatedAt = time.Time{}
	b = Boundary(goal, friday)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -200)
	if !b.Equal(want) {
		t.Errorf("Boundary() = %v, want %v", b, want)
	}
}
