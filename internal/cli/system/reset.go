package system

import (
	"context"
	"fmt"

	"github.com/julianstephens/streaks/internal/cli"
	"github.com/julianstephens/streaks/internal/forms"
)

type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

// Run deletes every goal, habit and log of the current owner
func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := forms.Confirm(
			fmt.Sprintf("Delete all data for %q?", ctx.Tracker.Owner()),
			"Goals, habits and completion history are removed. A backup is taken first for local databases.",
		)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Tracker.Reset(context.Background()); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	fmt.Println("✓ All data deleted")
	return nil
}
