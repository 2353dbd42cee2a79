package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/streaks/internal/cache"
	"github.com/julianstephens/streaks/internal/calendar"
	"github.com/julianstephens/streaks/internal/logger"
	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/storage"
	"github.com/julianstephens/streaks/internal/utils"
)

var (
	ErrUnknownGoal  = errors.New("unknown goal")
	ErrUnknownHabit = errors.New("unknown habit")
	ErrFutureDate   = errors.New("cannot record completions for a future date")
	ErrBeforeStart  = errors.New("goal was not set for this date")
)

// Tracker is the application service shared by the CLI and the TUI.
// Reads come from the cache; writes go to the remote store first, except
// completion toggles which are optimistic.
type Tracker struct {
	cache  *cache.Store
	remote storage.Provider
	loc    *time.Location
	now    func() time.Time
}

// Option configures a Tracker
type Option func(*Tracker)

// WithLocation sets the timezone that defines calendar days
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// WithClock overrides the current time, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New creates a tracker over store, writing through to remote
func New(store *cache.Store, remote storage.Provider, opts ...Option) *Tracker {
	t := &Tracker{
		cache:  store,
		remote: remote,
		loc:    time.Local,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Cache exposes the underlying store for read-only views
func (t *Tracker) Cache() *cache.Store {
	return t.cache
}

// Owner returns the identity records are scoped to
func (t *Tracker) Owner() string {
	return t.cache.OwnerID()
}

// Location returns the timezone calendar days are computed in
func (t *Tracker) Location() *time.Location {
	return t.loc
}

// Now returns the current time in the tracker's timezone
func (t *Tracker) Now() time.Time {
	return t.now().In(t.loc)
}

// Today returns today's day key
func (t *Tracker) Today() string {
	return utils.DayKey(t.Now())
}

// Refresh reloads the cache from the remote store
func (t *Tracker) Refresh(ctx context.Context) error {
	return t.cache.Refresh(ctx, t.remote)
}

// Goals returns the owner's goals in creation order
func (t *Tracker) Goals() []models.Goal {
	return t.cache.Goals()
}

// ScheduledToday returns the goals active today
func (t *Tracker) ScheduledToday() []models.Goal {
	return ScheduledToday(t.cache.Goals(), t.Now())
}

// DefaultGoal returns the goal the today screen opens on
func (t *Tracker) DefaultGoal() (models.Goal, bool) {
	return DefaultGoal(t.cache.Goals(), t.Now())
}

// ResolveGoal finds a goal by ID, unique ID prefix, or case-insensitive title
func (t *Tracker) ResolveGoal(ref string) (models.Goal, error) {
	ref = strings.TrimSpace(ref)
	if g, ok := t.cache.Goal(ref); ok {
		return g, nil
	}

	var matches []models.Goal
	for _, g := range t.cache.Goals() {
		if strings.HasPrefix(g.ID, ref) || strings.EqualFold(g.Title, ref) {
			matches = append(matches, g)
		}
	}
	switch {
	case ref == "" || len(matches) == 0:
		return models.Goal{}, fmt.Errorf("%w: %q", ErrUnknownGoal, ref)
	case len(matches) > 1:
		return models.Goal{}, fmt.Errorf("%w: %q matches %d goals", ErrUnknownGoal, ref, len(matches))
	}
	return matches[0], nil
}

// ResolveHabit finds a habit by ID, unique ID prefix, or case-insensitive title
func (t *Tracker) ResolveHabit(ref string) (models.Habit, error) {
	ref = strings.TrimSpace(ref)
	if h, ok := t.cache.Habit(ref); ok {
		return h, nil
	}

	var matches []models.Habit
	for _, h := range t.cache.Habits() {
		if strings.HasPrefix(h.ID, ref) || strings.EqualFold(h.Title, ref) {
			matches = append(matches, h)
		}
	}
	switch {
	case ref == "" || len(matches) == 0:
		return models.Habit{}, fmt.Errorf("%w: %q", ErrUnknownHabit, ref)
	case len(matches) > 1:
		return models.Habit{}, fmt.Errorf("%w: %q matches %d habits", ErrUnknownHabit, ref, len(matches))
	}
	return matches[0], nil
}

// Summary builds the today view of a goal
func (t *Tracker) Summary(goal models.Goal) Summary {
	return Summarize(goal, t.cache.Habits(), t.cache.Logs(), t.Now())
}

// Streak returns the goal's current streak
func (t *Tracker) Streak(goal models.Goal) int {
	return t.Summary(goal).Streak
}

// Matrix builds the per-habit month grid for a goal
func (t *Tracker) Matrix(goal models.Goal, month calendar.Month, opts ...calendar.Option) calendar.Matrix {
	return calendar.BuildMatrix(goal, t.cache.Habits(), t.cache.Logs(), month.Days(), opts...)
}

// Overview builds the aggregate month view for a goal
func (t *Tracker) Overview(goal models.Goal, month calendar.Month, opts ...calendar.Option) calendar.Overview {
	return calendar.BuildOverview(goal, t.cache.Habits(), t.cache.Logs(), month.Days(), opts...)
}

// Day builds the detail view of one goal on one date
func (t *Tracker) Day(goal models.Goal, date string) (calendar.DayDetail, error) {
	if !utils.ValidateDay(date) {
		return calendar.DayDetail{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return calendar.BuildDayDetail(goal, t.cache.Habits(), t.cache.Logs(), date, t.Now()), nil
}

// checkToggle rejects dates outside the goal's window
func (t *Tracker) checkToggle(habit models.Habit, date string) error {
	if !utils.ValidateDay(date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	if date > t.Today() {
		return ErrFutureDate
	}
	if goal, ok := t.cache.Goal(habit.GoalID); ok && goal.BeforeStart(date, t.loc) {
		return ErrBeforeStart
	}
	return nil
}

// BeginToggle validates the request and applies the optimistic flip.
// The caller must Commit or Resolve the returned toggle.
func (t *Tracker) BeginToggle(habit models.Habit, date string) (*cache.PendingToggle, error) {
	if err := t.checkToggle(habit, date); err != nil {
		return nil, err
	}
	return t.cache.BeginToggle(habit, date), nil
}

// Commit persists a pending toggle. Failures are *cache.RollbackError.
func (t *Tracker) Commit(ctx context.Context, p *cache.PendingToggle) error {
	return p.Commit(ctx, t.remote)
}

// Toggle flips and persists the completion of habit on date
func (t *Tracker) Toggle(ctx context.Context, habit models.Habit, date string) (models.CompletionLog, error) {
	if err := t.checkToggle(habit, date); err != nil {
		return models.CompletionLog{}, err
	}
	return t.cache.Toggle(ctx, t.remote, habit, date)
}

// GoalInput carries the editable fields of a goal
type GoalInput struct {
	Title     string
	Weekdays  models.WeekdaySet
	Quote     string
	StartDate string
	Habits    []string
}

// CreateGoal stores a new goal and its initial habits
func (t *Tracker) CreateGoal(ctx context.Context, in GoalInput) (models.Goal, error) {
	if in.StartDate != "" && !utils.ValidateDay(in.StartDate) {
		return models.Goal{}, fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", in.StartDate)
	}
	now := t.Now()
	goal := models.Goal{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(in.Title),
		Weekdays:  in.Weekdays.Normalize(),
		Quote:     strings.TrimSpace(in.Quote),
		StartDate: in.StartDate,
		CreatedAt: now,
		OwnerID:   t.Owner(),
	}
	if err := t.remote.SaveGoal(ctx, goal); err != nil {
		return models.Goal{}, err
	}

	for i, title := range in.Habits {
		if strings.TrimSpace(title) == "" {
			continue
		}
		// keep habits ordered as given
		if _, err := t.addHabit(ctx, goal.ID, title, now.Add(time.Duration(i)*time.Millisecond)); err != nil {
			return goal, err
		}
	}
	logger.Info("Goal created", "id", goal.ID, "habits", len(in.Habits))
	return goal, t.Refresh(ctx)
}

// UpdateGoal saves edited goal fields
func (t *Tracker) UpdateGoal(ctx context.Context, goal models.Goal) error {
	if goal.StartDate != "" && !utils.ValidateDay(goal.StartDate) {
		return fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", goal.StartDate)
	}
	goal.Weekdays = goal.Weekdays.Normalize()
	goal.OwnerID = t.Owner()
	if err := t.remote.SaveGoal(ctx, goal); err != nil {
		return err
	}
	return t.Refresh(ctx)
}

// DeleteGoal removes a goal with its habits and logs
func (t *Tracker) DeleteGoal(ctx context.Context, goalID string) error {
	if err := t.remote.DeleteGoal(ctx, t.Owner(), goalID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownGoal, goalID)
		}
		return err
	}
	return t.Refresh(ctx)
}

// AddHabit appends a habit to a goal
func (t *Tracker) AddHabit(ctx context.Context, goalID, title string) (models.Habit, error) {
	h, err := t.addHabit(ctx, goalID, title, t.Now())
	if err != nil {
		return models.Habit{}, err
	}
	return h, t.Refresh(ctx)
}

func (t *Tracker) addHabit(ctx context.Context, goalID, title string, created time.Time) (models.Habit, error) {
	h := models.Habit{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(title),
		GoalID:    goalID,
		CreatedAt: created,
		OwnerID:   t.Owner(),
	}
	if err := t.remote.SaveHabit(ctx, h); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Habit{}, fmt.Errorf("%w: %s", ErrUnknownGoal, goalID)
		}
		return models.Habit{}, err
	}
	return h, nil
}

// RenameHabit changes a habit's title
func (t *Tracker) RenameHabit(ctx context.Context, habit models.Habit, title string) error {
	habit.Title = strings.TrimSpace(title)
	if err := t.remote.SaveHabit(ctx, habit); err != nil {
		return err
	}
	return t.Refresh(ctx)
}

// DeleteHabit removes a habit and its logs
func (t *Tracker) DeleteHabit(ctx context.Context, habitID string) error {
	if err := t.remote.DeleteHabit(ctx, t.Owner(), habitID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownHabit, habitID)
		}
		return err
	}
	return t.Refresh(ctx)
}

// Reset deletes all of the owner's data
func (t *Tracker) Reset(ctx context.Context) error {
	return t.cache.Reset(ctx, t.remote)
}
