package habits

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/streaks/internal/cli"
	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/storage/sqlite"
	"github.com/julianstephens/streaks/internal/tracker"
)

var friday = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) (*cli.Context, models.Goal) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := cli.NewContext(store, "tester", time.UTC, tracker.WithClock(func() time.Time { return friday }))
	goal, err := ctx.Tracker.CreateGoal(context.Background(), tracker.GoalInput{
		Title:    "Fitness",
		Weekdays: models.WeekdaySet{time.Friday},
	})
	if err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	return ctx, goal
}

func TestHabitLifecycle(t *testing.T) {
	ctx, goal := setupTestDB(t)

	if err := (&HabitAddCmd{Goal: "Fitness", Title: "Run"}).Run(ctx); err != nil {
		t.Fatalf("habit add failed: %v", err)
	}
	habits := ctx.Tracker.Cache().GoalHabits(goal.ID)
	if len(habits) != 1 || habits[0].Title != "Run" {
		t.Fatalf("unexpected habits %+v", habits)
	}

	if err := (&HabitRenameCmd{ID: "run", Title: "Jog"}).Run(ctx); err != nil {
		t.Fatalf("habit rename failed: %v", err)
	}
	if _, err := ctx.Tracker.ResolveHabit("Jog"); err != nil {
		t.Errorf("renamed habit not found: %v", err)
	}

	if err := (&HabitListCmd{Goal: "Fitness"}).Run(ctx); err != nil {
		t.Errorf("habit list failed: %v", err)
	}

	// history goes with the habit
	if _, err := ctx.Tracker.Toggle(context.Background(), habits[0], "2024-03-15"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if err := (&HabitDeleteCmd{ID: "Jog"}).Run(ctx); err != nil {
		t.Fatalf("habit delete failed: %v", err)
	}
	if len(ctx.Tracker.Cache().Habits()) != 0 || len(ctx.Tracker.Cache().Logs()) != 0 {
		t.Error("expected habit and logs to be deleted")
	}
}

func TestHabitAddCmd_UnknownGoal(t *testing.T) {
	ctx, _ := setupTestDB(t)

	err := (&HabitAddCmd{Goal: "Reading", Title: "Read"}).Run(ctx)
	if !errors.Is(err, tracker.ErrUnknownGoal) {
		t.Errorf("expected ErrUnknownGoal, got %v", err)
	}
}

func TestHabitListCmd_Empty(t *testing.T) {
	ctx, _ := setupTestDB(t)
	if err := (&HabitListCmd{}).Run(ctx); err != nil {
		t.Errorf("habit list failed: %v", err)
	}
}
