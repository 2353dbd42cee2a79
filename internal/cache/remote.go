package cache

//go:generate mockgen -source=remote.go -destination=mocks/mock_remote.go -package=mocks

import (
	"context"

	"github.com/julianstephens/streaks/internal/models"
)

// LogWriter durably stores a completion log, upserting on (habit, date)
type LogWriter interface {
	WriteLog(ctx context.Context, log models.CompletionLog) error
}

// Fetcher returns owner-scoped snapshots of the remote collections
type Fetcher interface {
	FetchGoals(ctx context.Context, ownerID string) ([]models.Goal, error)
	FetchHabits(ctx context.Context, ownerID string) ([]models.Habit, error)
	FetchLogs(ctx context.Context, ownerID string) ([]models.CompletionLog, error)
}

// Remote is the subset of the persistence collaborator the cache relies on
type Remote interface {
	Fetcher
	LogWriter
	DeleteAllOwnerData(ctx context.Context, ownerID string) error
}
