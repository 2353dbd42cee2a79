package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/streaks/internal/backup"
	"github.com/julianstephens/streaks/internal/cache"
	"github.com/julianstephens/streaks/internal/logger"
	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/storage"
	"github.com/julianstephens/streaks/internal/storage/sqlite"
	"github.com/julianstephens/streaks/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
}

// NewContext wires a tracker over store for owner, computing days in loc
func NewContext(store storage.Provider, owner string, loc *time.Location, opts ...tracker.Option) *Context {
	opts = append([]tracker.Option{tracker.WithLocation(loc)}, opts...)
	return &Context{
		Store:   store,
		Tracker: tracker.New(cache.New(owner), store, opts...),
	}
}

// Load opens the store and fills the cache
func (c *Context) Load(ctx context.Context) error {
	if err := c.Store.Load(); err != nil {
		return err
	}
	return c.Tracker.Refresh(ctx)
}

// IsFileStore reports whether the store is a local SQLite file
func (c *Context) IsFileStore() bool {
	_, ok := c.Store.(*sqlite.Store)
	return ok
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.IsFileStore() {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseDays parses a --days value: a comma-separated weekday list or one of
// the presets "daily", "weekdays" and "weekends"
func ParseDays(s string) (models.WeekdaySet, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "daily", "everyday":
		return models.WeekdaySet{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}, nil
	case "weekdays":
		return models.WeekdaySet{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, nil
	case "weekends":
		return models.WeekdaySet{time.Saturday, time.Sunday}, nil
	}
	return models.ParseWeekdays(s)
}

// FormatDays formats a weekday set for listings
func FormatDays(days models.WeekdaySet) string {
	switch len(days.Normalize()) {
	case 0:
		return "never"
	case 7:
		return "daily"
	}
	return days.String()
}

// GoalOrDefault resolves ref, or picks the default goal when ref is empty
func (c *Context) GoalOrDefault(ref string) (models.Goal, error) {
	if ref != "" {
		return c.Tracker.ResolveGoal(ref)
	}
	g, ok := c.Tracker.DefaultGoal()
	if !ok {
		return models.Goal{}, fmt.Errorf("no goals yet. Use 'streaks goal add' to create one")
	}
	return g, nil
}

// ShortID trims a UUID for display
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
