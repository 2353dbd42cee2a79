package goals

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streaks/internal/cli"
	"github.com/julianstephens/streaks/internal/forms"
	"github.com/julianstephens/streaks/internal/storage/sqlite"
	"github.com/julianstephens/streaks/internal/tracker"
)

var friday = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return cli.NewContext(store, "tester", time.UTC, tracker.WithClock(func() time.Time { return friday }))
}

func stubForms(t *testing.T, fn func(*huh.Form) error) {
	t.Helper()
	orig := forms.Run
	forms.Run = fn
	t.Cleanup(func() { forms.Run = orig })
}

func TestGoalAddCmd(t *testing.T) {
	ctx := setupTestDB(t)

	cmd := &GoalAddCmd{Title: "Fitness", Days: "mon,wed,fri", Quote: "move", Habit: []string{"Run", "Stretch"}}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("goal add failed: %v", err)
	}

	goal, err := ctx.Tracker.ResolveGoal("fitness")
	if err != nil {
		t.Fatalf("goal not found after add: %v", err)
	}
	if goal.Weekdays.String() != "Mon,Wed,Fri" || goal.Quote != "move" {
		t.Errorf("unexpected goal %+v", goal)
	}
	if got := len(ctx.Tracker.Cache().GoalHabits(goal.ID)); got != 2 {
		t.Errorf("expected 2 habits, got %d", got)
	}
}

func TestGoalAddCmd_InvalidInput(t *testing.T) {
	ctx := setupTestDB(t)

	tests := []struct {
		name string
		cmd  GoalAddCmd
	}{
		{"bad days", GoalAddCmd{Title: "Fitness", Days: "funday"}},
		{"bad start", GoalAddCmd{Title: "Fitness", Days: "daily", Start: "next week"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("expected an error")
			}
		})
	}
	if n := len(ctx.Tracker.Goals()); n != 0 {
		t.Errorf("expected no goals, got %d", n)
	}
}

func TestGoalAddCmd_FormAborted(t *testing.T) {
	ctx := setupTestDB(t)
	stubForms(t, func(*huh.Form) error { return huh.ErrUserAborted })

	if err := (&GoalAddCmd{}).Run(ctx); !errors.Is(err, huh.ErrUserAborted) {
		t.Errorf("expected aborted form error, got %v", err)
	}
}

func TestGoalEditCmd(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&GoalAddCmd{Title: "Fitness", Days: "daily", Quote: "move", Start: "2024-03-01"}).Run(ctx); err != nil {
		t.Fatalf("goal add failed: %v", err)
	}

	edit := &GoalEditCmd{ID: "Fitness", Title: "Training", Days: "weekends", ClearQuote: true, ClearStart: true}
	if err := edit.Run(ctx); err != nil {
		t.Fatalf("goal edit failed: %v", err)
	}

	goal, err := ctx.Tracker.ResolveGoal("Training")
	if err != nil {
		t.Fatalf("renamed goal not found: %v", err)
	}
	if goal.Weekdays.String() != "Sat,Sun" || goal.Quote != "" || goal.StartDate != "" {
		t.Errorf("unexpected goal after edit %+v", goal)
	}
}

func TestGoalDeleteCmd(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&GoalAddCmd{Title: "Fitness", Days: "daily", Habit: []string{"Run"}}).Run(ctx); err != nil {
		t.Fatalf("goal add failed: %v", err)
	}

	t.Run("cancelled", func(t *testing.T) {
		stubForms(t, func(*huh.Form) error { return nil }) // leaves the answer at "No"
		if err := (&GoalDeleteCmd{ID: "Fitness"}).Run(ctx); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if len(ctx.Tracker.Goals()) != 1 {
			t.Error("goal should survive a declined confirmation")
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		if err := (&GoalDeleteCmd{ID: "Fitness", Yes: true}).Run(ctx); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if len(ctx.Tracker.Goals()) != 0 || len(ctx.Tracker.Cache().Habits()) != 0 {
			t.Error("expected the goal and its habits to be gone")
		}
	})
}

func TestGoalListCmd(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&GoalListCmd{}).Run(ctx); err != nil {
		t.Fatalf("empty list failed: %v", err)
	}
	if err := (&GoalAddCmd{Title: "Fitness", Days: "daily"}).Run(ctx); err != nil {
		t.Fatalf("goal add failed: %v", err)
	}
	if err := (&GoalListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
}
