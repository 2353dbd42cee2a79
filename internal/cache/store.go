// Package cache mirrors the remote goal, habit and completion log collections
// in memory. Completion logs support optimistic writes: a toggle is visible to
// readers immediately and is rolled back if the remote write fails.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/streaks/internal/logger"
	"github.com/julianstephens/streaks/internal/models"
)

// entryState tracks optimistic writes for one (habit, date) key.
// confirmed is the last value the remote is known to hold.
type entryState struct {
	pending   int
	confirmed bool
}

// Store is the in-memory mirror shared by every view.
// Writes go through Upsert, BeginToggle or the wholesale replace methods.
type Store struct {
	mu      sync.RWMutex
	ownerID string
	now     func() time.Time

	goals  []models.Goal
	habits []models.Habit
	logs   []models.CompletionLog

	// pos maps a log key to the position of its last occurrence in logs
	pos     map[string]int
	entries map[string]*entryState
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the clock used to stamp newly inserted logs
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store for ownerID
func New(ownerID string, opts ...Option) *Store {
	s := &Store{
		ownerID: ownerID,
		now:     time.Now,
		pos:     make(map[string]int),
		entries: make(map[string]*entryState),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OwnerID returns the owner the store is scoped to
func (s *Store) OwnerID() string {
	return s.ownerID
}

// Goals returns a copy of the goal collection in creation order
func (s *Store) Goals() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Goal looks up a goal by ID
func (s *Store) Goal(id string) (models.Goal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.goals {
		if g.ID == id {
			return g, true
		}
	}
	return models.Goal{}, false
}

// Habits returns a copy of the habit collection
func (s *Store) Habits() []models.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// Habit looks up a habit by ID
func (s *Store) Habit(id string) (models.Habit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// GoalHabits returns the habits of goalID in creation order
func (s *Store) GoalHabits(goalID string) []models.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.HabitsForGoal(s.habits, goalID)
}

// Logs returns a snapshot of the completion logs, optimistic values included
func (s *Store) Logs() []models.CompletionLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CompletionLog, len(s.logs))
	copy(out, s.logs)
	return out
}

// Get returns the cached log for (habitID, date)
func (s *Store) Get(habitID, date string) (models.CompletionLog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.pos[models.LogID(habitID, date)]
	if !ok {
		return models.CompletionLog{}, false
	}
	return s.logs[i], true
}

// Completed reports the cached completion value; absence means false
func (s *Store) Completed(habitID, date string) bool {
	log, ok := s.Get(habitID, date)
	return ok && log.Completed
}

// Pending reports whether (habitID, date) has an unconfirmed optimistic write
func (s *Store) Pending(habitID, date string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.entries[models.LogID(habitID, date)]
	return ok && st.pending > 0
}

// Upsert sets the completion value for (habitID, date), updating the existing
// log in place or appending a new one. It never blocks on the remote store.
func (s *Store) Upsert(habitID, date string, completed bool, goalID string) models.CompletionLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.upsertLocked(habitID, date, completed, goalID)
	if st, ok := s.entries[models.LogID(habitID, date)]; ok {
		st.confirmed = completed
	}
	return log
}

func (s *Store) upsertLocked(habitID, date string, completed bool, goalID string) models.CompletionLog {
	key := models.LogID(habitID, date)
	if i, ok := s.pos[key]; ok {
		s.logs[i].Completed = completed
		return s.logs[i]
	}

	log := models.CompletionLog{
		ID:        key,
		HabitID:   habitID,
		GoalID:    goalID,
		Date:      date,
		Completed: completed,
		OwnerID:   s.ownerID,
		CreatedAt: s.now(),
	}
	s.logs = append(s.logs, log)
	s.pos[key] = len(s.logs) - 1
	return log
}

// ReplaceAll swaps in fresh snapshots of all three collections.
// See ReplaceLogs for how unconfirmed toggles are kept.
func (s *Store) ReplaceAll(goals []models.Goal, habits []models.Habit, logs []models.CompletionLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals = append([]models.Goal(nil), goals...)
	models.SortGoals(s.goals)
	s.habits = append([]models.Habit(nil), habits...)
	s.replaceLogsLocked(logs)
}

// ReplaceLogs swaps in a fresh log snapshot. Keys with an unconfirmed
// optimistic write keep their local value; the snapshot may predate the write.
func (s *Store) ReplaceLogs(logs []models.CompletionLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLogsLocked(logs)
}

func (s *Store) replaceLogsLocked(snapshot []models.CompletionLog) {
	local := make(map[string]models.CompletionLog)
	for key, st := range s.entries {
		if st.pending == 0 {
			continue
		}
		if i, ok := s.pos[key]; ok {
			local[key] = s.logs[i]
		}
	}

	logs := make([]models.CompletionLog, 0, len(snapshot)+len(local))
	kept := make(map[string]bool, len(local))
	for _, l := range snapshot {
		key := models.LogID(l.HabitID, l.Date)
		if pendingLog, ok := local[key]; ok {
			if !kept[key] {
				logs = append(logs, pendingLog)
				kept[key] = true
			}
			continue
		}
		logs = append(logs, l)
	}
	for key, l := range local {
		if !kept[key] {
			logs = append(logs, l)
		}
	}

	s.logs = logs
	s.pos = make(map[string]int, len(logs))
	for i, l := range logs {
		s.pos[models.LogID(l.HabitID, l.Date)] = i
	}
}

// Clear empties every collection and forgets pending writes
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = nil
	s.habits = nil
	s.logs = nil
	s.pos = make(map[string]int)
	s.entries = make(map[string]*entryState)
}

// Refresh reloads all three collections for the store's owner. Records that
// fail validation are dropped and logged rather than failing the refresh.
func (s *Store) Refresh(ctx context.Context, remote Fetcher) error {
	goals, err := remote.FetchGoals(ctx, s.ownerID)
	if err != nil {
		return fmt.Errorf("failed to fetch goals: %w", err)
	}
	habits, err := remote.FetchHabits(ctx, s.ownerID)
	if err != nil {
		return fmt.Errorf("failed to fetch habits: %w", err)
	}
	logs, err := remote.FetchLogs(ctx, s.ownerID)
	if err != nil {
		return fmt.Errorf("failed to fetch logs: %w", err)
	}

	s.ReplaceAll(validGoals(goals, s.ownerID), validHabits(habits, s.ownerID), validLogs(logs, s.ownerID))
	logger.Debug("Cache refreshed", "owner", s.ownerID, "goals", len(goals), "habits", len(habits), "logs", len(logs))
	return nil
}

// Reset deletes every record the owner has on the remote, then clears the
// mirror. The mirror is left untouched if the remote delete fails.
func (s *Store) Reset(ctx context.Context, remote Remote) error {
	if err := remote.DeleteAllOwnerData(ctx, s.ownerID); err != nil {
		return fmt.Errorf("failed to delete owner data: %w", err)
	}
	s.Clear()
	return nil
}

func validGoals(in []models.Goal, owner string) []models.Goal {
	out := make([]models.Goal, 0, len(in))
	for _, g := range in {
		if g.OwnerID != owner {
			logger.Warn("Dropping goal owned by someone else", "id", g.ID)
			continue
		}
		if err := g.Validate(); err != nil {
			logger.Warn("Dropping invalid goal", "id", g.ID, "error", err)
			continue
		}
		g.Weekdays = g.Weekdays.Normalize()
		out = append(out, g)
	}
	return out
}

func validHabits(in []models.Habit, owner string) []models.Habit {
	out := make([]models.Habit, 0, len(in))
	for _, h := range in {
		if h.OwnerID != owner {
			logger.Warn("Dropping habit owned by someone else", "id", h.ID)
			continue
		}
		if err := h.Validate(); err != nil {
			logger.Warn("Dropping invalid habit", "id", h.ID, "error", err)
			continue
		}
		out = append(out, h)
	}
	return out
}

func validLogs(in []models.CompletionLog, owner string) []models.CompletionLog {
	out := make([]models.CompletionLog, 0, len(in))
	for _, l := range in {
		if l.OwnerID != owner {
			logger.Warn("Dropping log owned by someone else", "id", l.ID)
			continue
		}
		if err := l.Validate(); err != nil {
			logger.Warn("Dropping invalid log", "id", l.ID, "error", err)
			continue
		}
		out = append(out, l)
	}
	return out
}
