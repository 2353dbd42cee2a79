package tracking

import (
	"fmt"

	"github.com/julianstephens/streaks/internal/cli"
	"github.com/julianstephens/streaks/internal/render"
)

type DayCmd struct {
	Date string `arg:"" help:"Date in YYYY-MM-DD format or 'today'."`
	Goal string `help:"Goal ID or title (default: today's goal)."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.GoalOrDefault(c.Goal)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "today" {
		date = ctx.Tracker.Today()
	}
	detail, err := ctx.Tracker.Day(goal, date)
	if err != nil {
		return err
	}
	fmt.Print(render.Day(detail, -1))
	return nil
}
