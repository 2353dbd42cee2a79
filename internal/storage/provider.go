package storage

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

import (
	"context"
	"errors"

	"github.com/julianstephens/streaks/internal/models"
)

// ErrNotFound is returned when a goal or habit does not exist for the owner
var ErrNotFound = errors.New("record not found")

// Provider is the durable store behind the in-memory cache.
// Every read and delete is scoped to a single owner.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Snapshots
	FetchGoals(ctx context.Context, ownerID string) ([]models.Goal, error)
	FetchHabits(ctx context.Context, ownerID string) ([]models.Habit, error)
	FetchLogs(ctx context.Context, ownerID string) ([]models.CompletionLog, error)

	// WriteLog upserts on (habit_id, date); writing the same value twice is a no-op
	WriteLog(ctx context.Context, log models.CompletionLog) error

	// DeleteAllOwnerData removes every goal, habit and log of the owner in one transaction
	DeleteAllOwnerData(ctx context.Context, ownerID string) error

	// Goals
	SaveGoal(ctx context.Context, goal models.Goal) error
	// DeleteGoal also deletes the goal's habits and their logs
	DeleteGoal(ctx context.Context, ownerID, goalID string) error

	// Habits
	SaveHabit(ctx context.Context, habit models.Habit) error
	DeleteHabit(ctx context.Context, ownerID, habitID string) error

	// Utils
	GetConfigPath() string
}
