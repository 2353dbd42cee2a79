package system

import (
	"context"
	"fmt"
	"os"

	"github.com/julianstephens/streaks/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing SQLite database before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if !ctx.IsFileStore() {
			return fmt.Errorf("--force only applies to SQLite databases; use 'streaks reset' for PostgreSQL")
		}
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			// Close first to release the file
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			ctx.PerformAutomaticBackup()
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized streaks storage at: %s\n", ctx.Store.GetConfigPath())
	return ctx.Tracker.Refresh(context.Background())
}
