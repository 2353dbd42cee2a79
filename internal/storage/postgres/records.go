package postgres

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
		FROM goals WHERE owner_id = $1
		ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		var days string
		if err := rows.Scan(&g.ID, &g.OwnerID, &g.Title, &days, &g.Quote, &g.StartDate, &g.CreatedAt); err != nil {
			return nil, err
		}
		g.Weekdays, err = models.ParseWeekdays(days)
		if err != nil {
			logger.Warn("Skipping goal with unreadable days", "id", g.ID, "days", days, "error", err)
			continue
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Store) FetchHabits(ctx context.Context, ownerID string) ([]models.Habit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, goal_id, title, created_at
		FROM habits WHERE owner_id = $1
		ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.OwnerID, &h.GoalID, &h.Title, &h.CreatedAt); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) FetchLogs(ctx context.Context, ownerID string) ([]models.CompletionLog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, habit_id, goal_id, date, completed, created_at
		FROM completion_logs WHERE owner_id = $1
		ORDER BY date, habit_id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.CompletionLog
	for rows.Next() {
		var l models.CompletionLog
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.HabitID, &l.GoalID, &l.Date, &l.Completed, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *Store) WriteLog(ctx context.Context, log models.CompletionLog) error {
	if err := log.Validate(); err != nil {
		return err
	}
	if log.ID == "" {
		log.ID = models.LogID(log.HabitID, log.Date)
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO completion_logs (id, owner_id, habit_id, goal_id, date, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (habit_id, date) DO UPDATE SET
			completed = EXCLUDED.completed,
			goal_id = EXCLUDED.goal_id
		WHERE completion_logs.owner_id = EXCLUDED.owner_id`,
		log.ID, log.OwnerID, log.HabitID, log.GoalID, log.Date, log.Completed, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to write log: %w", err)
	}
	return nil
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
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			days = EXCLUDED.days,
			quote = EXCLUDED.quote,
			start_date = EXCLUDED.start_date
		WHERE goals.owner_id = EXCLUDED.owner_id`,
		goal.ID, goal.OwnerID, goal.Title, goal.Weekdays.String(), goal.Quote, goal.StartDate, goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("goal %s: %w", goal.ID, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, ownerID, goalID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM goals WHERE id = $1 AND owner_id = $2", goalID, ownerID)
		if err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("goal %s: %w", goalID, storage.ErrNotFound)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM completion_logs WHERE goal_id = $1 AND owner_id = $2", goalID, ownerID); err != nil {
			return fmt.Errorf("failed to delete goal logs: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM habits WHERE goal_id = $1 AND owner_id = $2", goalID, ownerID); err != nil {
			return fmt.Errorf("failed to delete goal habits: %w", err)
		}
		return nil
	})
}

func (s *Store) SaveHabit(ctx context.Context, habit models.Habit) error {
	if err := habit.Validate(); err != nil {
		return err
	}
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = time.Now()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			"SELECT EXISTS (SELECT 1 FROM goals WHERE id = $1 AND owner_id = $2)",
			habit.GoalID, habit.OwnerID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to look up goal: %w", err)
		}
		if !exists {
			return fmt.Errorf("goal %s: %w", habit.GoalID, storage.ErrNotFound)
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO habits (id, owner_id, goal_id, title, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title
			WHERE habits.owner_id = EXCLUDED.owner_id`,
			habit.ID, habit.OwnerID, habit.GoalID, habit.Title, habit.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to save habit: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("habit %s: %w", habit.ID, storage.ErrNotFound)
		}
		return nil
	})
}

func (s *Store) DeleteHabit(ctx context.Context, ownerID, habitID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM habits WHERE id = $1 AND owner_id = $2", habitID, ownerID)
		if err != nil {
			return fmt.Errorf("failed to delete habit: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("habit %s: %w", habitID, storage.ErrNotFound)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM completion_logs WHERE habit_id = $1 AND owner_id = $2", habitID, ownerID); err != nil {
			return fmt.Errorf("failed to delete habit logs: %w", err)
		}
		return nil
	})
}

func (s *Store) DeleteAllOwnerData(ctx context.Context, ownerID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"completion_logs", "habits", "goals"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE owner_id = $1", ownerID); err != nil {
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
