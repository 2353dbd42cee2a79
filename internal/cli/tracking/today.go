package tracking

import (
	"fmt"

	"github.com/julianstephens/streaks/internal/cli"
	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/render"
)

type TodayCmd struct {
	Goal string `help:"Goal ID or title (default: every goal scheduled today)."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	t := ctx.Tracker
	fmt.Println(render.TitleStyle.Render(render.DateLabel(t.Today())))
	fmt.Println()

	var goals []models.Goal
	if c.Goal != "" {
		g, err := t.ResolveGoal(c.Goal)
		if err != nil {
			return err
		}
		goals = []models.Goal{g}
	} else {
		goals = t.ScheduledToday()
	}

	if len(goals) == 0 {
		if len(t.Goals()) == 0 {
			fmt.Println("No goals yet. Use 'streaks goal add' to create one.")
		} else {
			fmt.Println("Nothing scheduled today.")
		}
		return nil
	}

	for i, g := range goals {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(render.Summary(t.Summary(g), -1))
	}
	return nil
}
