package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/streaks/internal/logger"
	"github.com/julianstephens/streaks/internal/models"
)

func (s *Store) FetchLogs(ctx context.Context, ownerID string) ([]models.CompletionLog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, habit_id, goal_id, date, completed, created_at
		FROM completion_logs WHERE owner_id = ?
		ORDER BY date, habit_id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.CompletionLog
	for rows.Next() {
		var l models.CompletionLog
		var createdAt string
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.HabitID, &l.GoalID, &l.Date, &l.Completed, &createdAt); err != nil {
			return nil, err
		}
		l.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			logger.Warn("Skipping log with unreadable created_at", "id", l.ID, "error", err)
			continue
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// WriteLog upserts the completion value for (habit_id, date).
// The original id and created_at are kept on update.
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
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, date) DO UPDATE SET
			completed = excluded.completed,
			goal_id = excluded.goal_id
		WHERE completion_logs.owner_id = excluded.owner_id`,
		log.ID, log.OwnerID, log.HabitID, log.GoalID, log.Date, log.Completed,
		log.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to write log: %w", err)
	}
	return nil
}
