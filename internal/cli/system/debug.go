package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/streaks/internal/cli"
	"github.com/julianstephens/streaks/internal/logger"
	"github.com/julianstephens/streaks/internal/models"
)

type DebugCmd struct {
	DBPath DebugDBPathCmd `cmd:"" help:"Show database path."`
	Dump   DebugDumpCmd   `cmd:"" help:"Dump the owner's goals, habits and logs as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(map[string]string{
		"path":  ctx.Store.GetConfigPath(),
		"owner": ctx.Tracker.Owner(),
		"log":   logger.Path(),
	})
}

type DebugDumpCmd struct {
	Goal string `help:"Only dump this goal and its records."`
}

type dump struct {
	Owner  string                 `json:"owner"`
	Goals  []models.Goal          `json:"goals"`
	Habits []models.Habit         `json:"habits"`
	Logs   []models.CompletionLog `json:"logs"`
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	c := ctx.Tracker.Cache()
	out := dump{
		Owner:  c.OwnerID(),
		Goals:  c.Goals(),
		Habits: c.Habits(),
		Logs:   c.Logs(),
	}

	if cmd.Goal != "" {
		g, err := ctx.Tracker.ResolveGoal(cmd.Goal)
		if err != nil {
			return err
		}
		out.Goals = []models.Goal{g}
		out.Habits = c.GoalHabits(g.ID)
		var logs []models.CompletionLog
		for _, l := range out.Logs {
			if l.GoalID == g.ID {
				logs = append(logs, l)
			}
		}
		out.Logs = logs
	}
	return printJSON(out)
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(b))
	return nil
}
