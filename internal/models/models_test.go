package models

import (
	"errors"
	"testing"
	"time"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"short names", "mon,wed,fri", "Mon,Wed,Fri", false},
		{"full names mixed case", "Sunday, TUESDAY", "Tue,Sun", false},
		{"numbers", "0,6", "Sat,Sun", false},
		{"duplicates removed", "mon,Mon,monday", "Mon", false},
		{"empty", "", "", false},
		{"invalid", "mon,funday", "", true},
		{"out of range number", "7", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.String() != tt.want {
				t.Errorf("ParseWeekdays(%q) = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestWeekdaySetContains(t *testing.T) {
	set := WeekdaySet{time.Monday, time.Friday}
	if !set.Contains(time.Friday) {
		t.Error("expected Friday in set")
	}
	if set.Contains(time.Sunday) {
		t.Error("did not expect Sunday in set")
	}
	if (WeekdaySet{}).Contains(time.Monday) {
		t.Error("empty set contains nothing")
	}
}

func TestLogID(t *testing.T) {
	if got := LogID("h1", "2024-03-15"); got != "h1_2024-03-15" {
		t.Errorf("LogID() = %q", got)
	}
}

func TestGoalValidate(t *testing.T) {
	tests := []struct {
		name    string
		goal    Goal
		wantErr bool
	}{
		{"valid", Goal{ID: "g1", Title: "Fit", Weekdays: WeekdaySet{time.Monday}}, false},
		{"valid without weekdays", Goal{ID: "g1", Title: "Fit"}, false},
		{"valid start date", Goal{ID: "g1", Title: "Fit", StartDate: "2024-01-01"}, false},
		{"missing id", Goal{Title: "Fit"}, true},
		{"missing title", Goal{ID: "g1", Title: "  "}, true},
		{"bad start date", Goal{ID: "g1", Title: "Fit", StartDate: "01/01/2024"}, true},
		{"bad weekday", Goal{ID: "g1", Title: "Fit", Weekdays: WeekdaySet{time.Weekday(9)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goal.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("expected ErrInvalidRecord, got %v", err)
			}
		})
	}
}

func TestHabitValidate(t *testing.T) {
	if err := (Habit{ID: "h1", Title: "Walk", GoalID: "g1"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Habit{ID: "h1", Title: "Walk"}).Validate(); err == nil {
		t.Error("habit without goal must be invalid")
	}
}

func TestCompletionLogValidate(t *testing.T) {
	if err := (CompletionLog{HabitID: "h1", Date: "2024-03-15"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (CompletionLog{HabitID: "h1", Date: "2024-3-15"}).Validate(); err == nil {
		t.Error("expected malformed date to fail")
	}
	if err := (CompletionLog{Date: "2024-03-15"}).Validate(); err == nil {
		t.Error("expected missing habit to fail")
	}
}

func TestHabitsForGoal(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	habits := []Habit{
		{ID: "c", GoalID: "g1", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "x", GoalID: "g2", CreatedAt: base},
		{ID: "b", GoalID: "g1", CreatedAt: base},
		{ID: "a", GoalID: "g1", CreatedAt: base},
		{ID: "orphan", GoalID: "", CreatedAt: base},
	}

	got := HabitsForGoal(habits, "g1")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("HabitsForGoal() returned %d habits, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}

	if len(HabitsForGoal(habits, "")) != 0 {
		t.Error("empty goal id must not match habits without a goal")
	}
}

func TestDisplayQuote(t *testing.T) {
	if (Goal{Quote: "Keep going"}).DisplayQuote() != "Keep going" {
		t.Error("expected custom quote")
	}
	if (Goal{}).DisplayQuote() == "" {
		t.Error("expected default quote")
	}
}
