package habits

import (
	"context"
	"fmt"

	"github.com/julianstephens/streaks/internal/cli"
	"github.com/julianstephens/streaks/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a habit to a goal."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Rename HabitRenameCmd `cmd:"" help:"Rename a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its history."`
}

type HabitAddCmd struct {
	Goal  string `arg:"" help:"Goal ID or title."`
	Title string `arg:"" help:"Habit title."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.Tracker.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	habit, err := ctx.Tracker.AddHabit(context.Background(), goal.ID, c.Title)
	if err != nil {
		return err
	}
	fmt.Printf("Added habit: %s to %s\n", habit.Title, goal.Title)
	return nil
}

type HabitListCmd struct {
	Goal string `help:"Only list habits of this goal."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	goals := ctx.Tracker.Goals()
	if c.Goal != "" {
		g, err := ctx.Tracker.ResolveGoal(c.Goal)
		if err != nil {
			return err
		}
		goals = []models.Goal{g}
	}

	found := false
	for _, g := range goals {
		habits := ctx.Tracker.Cache().GoalHabits(g.ID)
		if len(habits) == 0 {
			continue
		}
		found = true
		fmt.Println(g.Title)
		for _, h := range habits {
			fmt.Printf("  %s  %s\n", cli.ShortID(h.ID), h.Title)
		}
	}
	if !found {
		fmt.Println("No habits found.")
	}
	return nil
}

type HabitRenameCmd struct {
	ID    string `arg:"" help:"Habit ID or title."`
	Title string `arg:"" help:"New title."`
}

func (c *HabitRenameCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Tracker.ResolveHabit(c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.RenameHabit(context.Background(), habit, c.Title); err != nil {
		return err
	}
	fmt.Printf("Renamed habit %q to %q\n", habit.Title, c.Title)
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit ID or title."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Tracker.ResolveHabit(c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.DeleteHabit(context.Background(), habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", habit.Title)
	return nil
}
