package tracking

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/streaks/internal/calendar"
	"github.com/julianstephens/streaks/internal/cli"
	"github.com/julianstephens/streaks/internal/report"
)

type ReportCmd struct {
	Goal   string `help:"Goal ID or title (default: today's goal)."`
	Month  string `help:"Month in YYYY-MM format (default: current month)." default:""`
	Output string `short:"o" help:"Output PDF path (default: streaks-<goal>-<month>.pdf in the current directory)." type:"path"`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
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

	path := c.Output
	if path == "" {
		path = report.Filename(goal, month)
	}

	err = report.WriteFile(path, report.Report{
		Goal:      goal,
		Month:     month,
		Matrix:    t.Matrix(goal, month),
		Overview:  t.Overview(goal, month),
		Streak:    t.Streak(goal),
		Generated: t.Now(),
	})
	if err != nil {
		return err
	}

	abs, _ := filepath.Abs(path)
	fmt.Printf("✓ Report generated: %s\n", abs)
	return nil
}
