package system

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/streaks/internal/backup"
	"github.com/julianstephens/streaks/internal/cli"
	"github.com/julianstephens/streaks/internal/storage/sqlite"
)

type DoctorCmd struct{}

type schemaReporter interface {
	SchemaVersion() (current, latest int, err error)
}

type check struct {
	name    string
	run     func(*cli.Context) error
	needsDB bool
	warning bool
}

var checks = []check{
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warning: true},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "Data integrity", run: checkIntegrity, needsDB: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := true
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
		dbReachable = false
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case c.warning:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if s, ok := ctx.Store.(*sqlite.Store); ok {
		db := s.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	r, ok := ctx.Store.(schemaReporter)
	if !ok {
		return nil
	}
	current, latest, err := r.SchemaVersion()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("schema version %d is behind %d, run 'streaks init'", current, latest)
	}
	if current > latest {
		return fmt.Errorf("schema version %d is newer than this binary supports (%d)", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if !ctx.IsFileStore() {
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	latest, ok, err := mgr.Latest()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if !ok {
		return fmt.Errorf("no backups found in %s", mgr.Dir())
	}
	if age := time.Since(latest.Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("latest backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Tracker.Now()
	if now.Year() < 2000 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if ctx.Tracker.Location() == nil {
		return fmt.Errorf("no timezone configured")
	}
	return nil
}

// checkIntegrity reads raw records from storage, bypassing the cache's
// filtering, and reports dangling references.
func checkIntegrity(ctx *cli.Context) error {
	c := context.Background()
	owner := ctx.Tracker.Owner()

	goals, err := ctx.Store.FetchGoals(c, owner)
	if err != nil {
		return err
	}
	habits, err := ctx.Store.FetchHabits(c, owner)
	if err != nil {
		return err
	}
	logs, err := ctx.Store.FetchLogs(c, owner)
	if err != nil {
		return err
	}

	goalIDs := make(map[string]bool, len(goals))
	for _, g := range goals {
		if err := g.Validate(); err != nil {
			return err
		}
		goalIDs[g.ID] = true
	}
	habitGoal := make(map[string]string, len(habits))
	orphanHabits := 0
	for _, h := range habits {
		habitGoal[h.ID] = h.GoalID
		if !goalIDs[h.GoalID] {
			orphanHabits++
		}
	}
	orphanLogs, mismatched := 0, 0
	for _, l := range logs {
		goalID, ok := habitGoal[l.HabitID]
		switch {
		case !ok:
			orphanLogs++
		case goalID != l.GoalID:
			mismatched++
		}
	}

	if orphanHabits+orphanLogs+mismatched > 0 {
		return fmt.Errorf("%d habit(s) without goal, %d log(s) without habit, %d log(s) with a stale goal", orphanHabits, orphanLogs, mismatched)
	}
	return nil
}
