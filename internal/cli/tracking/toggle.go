package tracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/julianstephens/streaks/internal/cache"
	"github.com/julianstephens/streaks/internal/cli"
	apperrors "github.com/julianstephens/streaks/internal/errors"
)

type ToggleCmd struct {
	Habit string `arg:"" help:"Habit ID or title."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

// Run flips the habit's completion. A failed remote write is rolled back
// and reported as a warning; the command itself still succeeds.
func (c *ToggleCmd) Run(ctx *cli.Context) error {
	t := ctx.Tracker
	habit, err := t.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = t.Today()
	}

	log, err := t.Toggle(context.Background(), habit, day)
	var rb *cache.RollbackError
	switch {
	case errors.As(err, &rb):
		if rb.Restored {
			apperrors.Warn(fmt.Errorf("could not save %q for %s, change rolled back: %w", habit.Title, day, rb.Err))
		} else {
			apperrors.Warn(fmt.Errorf("could not save %q for %s: %w", habit.Title, day, rb.Err))
		}
		return nil
	case err != nil:
		return err
	}

	if log.Completed {
		fmt.Printf("✓ Marked %q done for %s\n", habit.Title, day)
	} else {
		fmt.Printf("Unmarked %q for %s\n", habit.Title, day)
	}
	if g, ok := t.Cache().Goal(habit.GoalID); ok {
		s := t.Summary(g)
		if s.AllDone() && day == t.Today() {
			fmt.Printf("All done for %s today. Streak: %d\n", g.Title, s.Streak)
		}
	}
	return nil
}
