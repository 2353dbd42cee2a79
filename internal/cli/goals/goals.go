package goals

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/streaks/internal/cli"
	"github.com/julianstephens/streaks/internal/forms"
	"github.com/julianstephens/streaks/internal/tracker"
)

type GoalCmd struct {
	Add    GoalAddCmd    `cmd:"" help:"Add a new goal."`
	List   GoalListCmd   `cmd:"" help:"List goals."`
	Edit   GoalEditCmd   `cmd:"" help:"Edit an existing goal."`
	Delete GoalDeleteCmd `cmd:"" help:"Delete a goal with its habits and history."`
}

type GoalAddCmd struct {
	Title string   `arg:"" optional:"" help:"Goal title. Opens a form when omitted."`
	Days  string   `help:"Active days: comma-separated weekdays, 'daily', 'weekdays' or 'weekends'." default:"daily"`
	Quote string   `help:"Quote shown above the goal's tasks."`
	Start string   `help:"Start date in YYYY-MM-DD format (default: today)."`
	Habit []string `help:"Habit to add to the goal. Repeatable."`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	var in tracker.GoalInput
	if strings.TrimSpace(c.Title) == "" {
		fm := &forms.GoalFormModel{}
		if err := forms.Run(forms.NewGoalForm(fm)); err != nil {
			return err
		}
		in = fm.Input()
	} else {
		days, err := cli.ParseDays(c.Days)
		if err != nil {
			return err
		}
		in = tracker.GoalInput{
			Title:     c.Title,
			Weekdays:  days,
			Quote:     c.Quote,
			StartDate: c.Start,
			Habits:    c.Habit,
		}
	}

	goal, err := ctx.Tracker.CreateGoal(context.Background(), in)
	if err != nil {
		return err
	}

	fmt.Printf("Added goal: %s (%s)\n", goal.Title, cli.ShortID(goal.ID))
	if n := len(ctx.Tracker.Cache().GoalHabits(goal.ID)); n > 0 {
		fmt.Printf("  with %d habit(s)\n", n)
	}
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	goals := ctx.Tracker.Goals()
	if len(goals) == 0 {
		fmt.Println("No goals found.")
		return nil
	}

	loc := ctx.Tracker.Location()
	for _, g := range goals {
		habits := ctx.Tracker.Cache().GoalHabits(g.ID)
		fmt.Printf("%s  %s  [%s]  since %s  %d habit(s)\n",
			cli.ShortID(g.ID), g.Title, cli.FormatDays(g.Weekdays), g.EffectiveStart(loc), len(habits))
	}
	return nil
}

type GoalEditCmd struct {
	ID         string `arg:"" help:"Goal ID or title."`
	Title      string `help:"New title."`
	Days       string `help:"New active days."`
	Quote      string `help:"New quote."`
	Start      string `help:"New start date in YYYY-MM-DD format."`
	ClearQuote bool   `help:"Remove the quote."`
	ClearStart bool   `help:"Remove the start date."`
}

func (c *GoalEditCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.Tracker.ResolveGoal(c.ID)
	if err != nil {
		return err
	}

	if c.Title != "" {
		goal.Title = strings.TrimSpace(c.Title)
	}
	if c.Days != "" {
		days, err := cli.ParseDays(c.Days)
		if err != nil {
			return err
		}
		goal.Weekdays = days
	}
	switch {
	case c.ClearQuote:
		goal.Quote = ""
	case c.Quote != "":
		goal.Quote = c.Quote
	}
	switch {
	case c.ClearStart:
		goal.StartDate = ""
	case c.Start != "":
		goal.StartDate = c.Start
	}

	if err := ctx.Tracker.UpdateGoal(context.Background(), goal); err != nil {
		return err
	}
	fmt.Printf("Updated goal: %s\n", goal.Title)
	return nil
}

type GoalDeleteCmd struct {
	ID  string `arg:"" help:"Goal ID or title."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.Tracker.ResolveGoal(c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := forms.Confirm(
			fmt.Sprintf("Delete %q?", goal.Title),
			"Its habits and completion history are deleted too.",
		)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Tracker.DeleteGoal(context.Background(), goal.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted goal: %s\n", goal.Title)
	return nil
}
