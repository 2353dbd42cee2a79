package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/streaks/internal/logger"
	"github.com/julianstephens/streaks/internal/models"
	"github.com/julianstephens/streaks/internal/storage"
)

func (s *Store) FetchGoals(ctx context.Context, ownerID string) ([]models.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, title, days, quote, start_date, created_at
		FROM goals WHERE owner_id = ?
		ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		var days, createdAt string
		if err := rows.Scan(&g.ID, &g.OwnerID, &g.Title, &days, &g.Quote, &g.StartDate, &createdAt); err != nil {
			return nil, err
		}

		g.Weekdays, err = models.ParseWeekdays(days)
		if err != nil {
			logger.Warn("Skipping goal with unreadable days", "id", g.ID, "days", days, "error", err)
			continue
		}
		g.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			logger.Warn("Skipping goal with unreadable created_at", "id", g.ID, "error", err)
			continue
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Store) SaveGoal(ctx context.Context, goal models.Goal) error {
	if err := goal.Validate(); err != nil {
		return err
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (id, owner_id, title, days, quote, start_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			days = excluded.days,
			quote = excluded.quote,
			start_date = excluded.start_date
		WHERE goals.owner_id = excluded.owner_id`,
		goal.ID, goal.OwnerID, goal.Title, goal.Weekdays.String(), goal.Quote, goal.StartDate,
		goal.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("goal %s: %w", goal.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteGoal removes the goal together with its habits and their logs
func (s *Store) DeleteGoal(ctx context.Context, ownerID, goalID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM goals WHERE id = ? AND owner_id = ?", goalID, ownerID)
		if err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("goal %s: %w", goalID, storage.ErrNotFound)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM completion_logs WHERE goal_id = ? AND owner_id = ?", goalID, ownerID); err != nil {
			return fmt.Errorf("failed to delete goal logs: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM habits WHERE goal_id = ? AND owner_id = ?", goalID, ownerID); err != nil {
			return fmt.Errorf("failed to delete goal habits: %w", err)
		}
		return nil
	})
}

// DeleteAllOwnerData wipes every goal, habit and log of the owner
func (s *Store) DeleteAllOwnerData(ctx context.Context, ownerID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"completion_logs", "habits", "goals"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE owner_id = ?", ownerID); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
