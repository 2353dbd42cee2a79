package tracking

import (
	"fmt"

	"github.com/julianstephens/streaks/internal/calendar"
	"github.com/julianstephens/streaks/internal/cli"
	"github.com/julianstephens/streaks/internal/render"
)

type CalendarCmd struct {
	Goal  string `help:"Goal ID or title (default: today's goal)."`
	Month string `help:"Month in YYYY-MM format (default: current month)." default:""`
	View  string `help:"Calendar view." enum:"overview,matrix" default:"overview"`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	t := ctx.Tracker
	goal, err := ctx.GoalOrDefault(c.Goal)
	if err != nil {
		return err
	}

	month := calendar.MonthOf(t.Now())
	if c.Month != "" {
		if month, err = calendar.ParseMonth(c.Month); err != nil {
			return err
		}
	}

	today := t.Today()
	switch c.View {
	case "matrix":
		fmt.Print(render.Matrix(goal, month, t.Matrix(goal, month), today))
	default:
		fmt.Print(render.Overview(goal, month, t.Overview(goal, month), today))
	}
	return nil
}
