// Package forms holds the huh forms shared by the CLI prompts and the TUI.
package forms

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/tracker"
	"github.com/julianstephens/streaks/internal/utils"
)

// GoalFormModel holds the values bound to the goal form
type GoalFormModel struct {
	Title     string
	Days      []time.Weekday
	Quote     string
	StartDate string
	Habits    string // one habit per line
}

// Input converts the form values into a tracker.GoalInput
func (fm *GoalFormModel) Input() tracker.GoalInput {
	var habits []string
	for _, line := range strings.Split(fm.Habits, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			habits = append(habits, line)
		}
	}
	return tracker.GoalInput{
		Title:     strings.TrimSpace(fm.Title),
		Weekdays:  models.WeekdaySet(fm.Days).Normalize(),
		Quote:     strings.TrimSpace(fm.Quote),
		StartDate: strings.TrimSpace(fm.StartDate),
		Habits:    habits,
	}
}

// HabitFormModel holds the values bound to the habit form
type HabitFormModel struct {
	Title string
}

// ValidateTitle rejects blank titles
func ValidateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	return nil
}

// ValidateOptionalDate accepts an empty string or a YYYY-MM-DD day
func ValidateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || utils.ValidateDay(s) {
		return nil
	}
	return fmt.Errorf("date must be YYYY-MM-DD")
}

func weekdayOptions() []huh.Option[time.Weekday] {
	days := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}
	opts := make([]huh.Option[time.Weekday], 0, len(days))
	for _, d := range days {
		opts = append(opts, huh.NewOption(d.String(), d))
	}
	return opts
}

// NewGoalForm creates a form for adding or editing a goal
func NewGoalForm(fm *GoalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal").
				Value(&fm.Title).
				Validate(ValidateTitle),
			huh.NewMultiSelect[time.Weekday]().
				Title("Active days").
				Options(weekdayOptions()...).
				Value(&fm.Days),
			huh.NewInput().
				Title("Quote").
				Description("Shown above today's tasks").
				Value(&fm.Quote),
			huh.NewInput().
				Title("Start date").
				Description("YYYY-MM-DD, leave empty to start today").
				Value(&fm.StartDate).
				Validate(ValidateOptionalDate),
			huh.NewText().
				Title("Habits").
				Description("One per line").
				Value(&fm.Habits),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewHabitForm creates a form for adding a habit
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit").
				Value(&fm.Title).
				Validate(ValidateTitle),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewConfirmForm creates a yes/no form bound to value
func NewConfirmForm(title, description string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(value),
		),
	).WithTheme(huh.ThemeDracula())
}

// Run runs a form in the terminal. Tests replace it.
var Run = func(f *huh.Form) error {
	return f.Run()
}

// Confirm asks a yes/no question on the terminal
func Confirm(title, description string) (bool, error) {
	var ok bool
	if err := Run(NewConfirmForm(title, description, &ok)); err != nil {
		return false, err
	}
	return ok, nil
}
