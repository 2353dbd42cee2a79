package tracking

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/streaks/internal/cli"
	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/render"
)

type StreakCmd struct {
	Goal string `help:"Goal ID or title (default: all goals)."`
}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	t := ctx.Tracker
	goals := t.Goals()
	if c.Goal != "" {
		g, err := t.ResolveGoal(c.Goal)
		if err != nil {
			return err
		}
		goals = []models.Goal{g}
	}
	if len(goals) == 0 {
		fmt.Println("No goals found.")
		return nil
	}

	width := 0
	for _, g := range goals {
		if w := lipgloss.Width(g.Title); w > width {
			width = w
		}
	}
	label := lipgloss.NewStyle().Width(width + 2)
	for _, g := range goals {
		fmt.Println(label.Render(g.Title) + render.StreakBadge(t.Streak(g)))
	}
	return nil
}
