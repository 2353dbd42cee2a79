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

func (s *Store) FetchHabits(ctx context.Context, ownerID string) ([]models.Habit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, goal_id, title, created_at
		FROM habits WHERE owner_id = ?
		ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var createdAt string
		if err := rows.Scan(&h.ID, &h.OwnerID, &h.GoalID, &h.Title, &createdAt); err != nil {
			return nil, err
		}
		h.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			logger.Warn("Skipping habit with unreadable created_at", "id", h.ID, "error", err)
			continue
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// SaveHabit inserts or renames a habit. The goal must belong to the same owner.
func (s *Store) SaveHabit(ctx context.Context, habit models.Habit) error {
	if err := habit.Validate(); err != nil {
		return err
	}
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = time.Now()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var count int
		err := tx.QueryRowContext(ctx, "SELECT count(*) FROM goals WHERE id = ? AND owner_id = ?", habit.GoalID, habit.OwnerID).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to look up goal: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("goal %s: %w", habit.GoalID, storage.ErrNotFound)
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO habits (id, owner_id, goal_id, title, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET title = excluded.title
			WHERE habits.owner_id = excluded.owner_id`,
			habit.ID, habit.OwnerID, habit.GoalID, habit.Title, habit.CreatedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to save habit: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("habit %s: %w", habit.ID, storage.ErrNotFound)
		}
		return nil
	})
}

// DeleteHabit removes the habit and its logs
func (s *Store) DeleteHabit(ctx context.Context, ownerID, habitID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM habits WHERE id = ? AND owner_id = ?", habitID, ownerID)
		if err != nil {
			return fmt.Errorf("failed to delete habit: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("habit %s: %w", habitID, storage.ErrNotFound)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM completion_logs WHERE habit_id = ? AND owner_id = ?", habitID, ownerID); err != nil {
			return fmt.Errorf("failed to delete habit logs: %w", err)
		}
		return nil
	})
}
