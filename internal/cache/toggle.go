package cache

import (
	"context"
	"fmt"

	"github.com/julianstephens/streaks/internal/logger"
	"github.com/julianstephens/streaks/internal/models"
)

// RollbackError reports a toggle whose remote write failed.
// Restored is false when the cached value was left alone, either because
// another write to the same key was still in flight or because the cache
// already held the confirmed value.
type RollbackError struct {
	HabitID  string
	Date     string
	Restored bool
	Err      error
}

func (e *RollbackError) Error() string {
	if e.Restored {
		return fmt.Sprintf("failed to save %s on %s, change reverted: %v", e.HabitID, e.Date, e.Err)
	}
	return fmt.Sprintf("failed to save %s on %s: %v", e.HabitID, e.Date, e.Err)
}

func (e *RollbackError) Unwrap() error {
	return e.Err
}

// PendingToggle is an optimistic write that has not been confirmed yet
type PendingToggle struct {
	store    *Store
	key      string
	habit    models.Habit
	date     string
	resolved bool

	// Log is the cached log as it looked right after the toggle
	Log models.CompletionLog
}

// Value returns the optimistic completion value
func (p *PendingToggle) Value() bool {
	return p.Log.Completed
}

// BeginToggle flips the cached completion value for (habit, date) and returns
// a handle that must be resolved once the remote write finishes.
func (s *Store) BeginToggle(habit models.Habit, date string) *PendingToggle {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.LogID(habit.ID, date)
	previous := false
	if i, ok := s.pos[key]; ok {
		previous = s.logs[i].Completed
	}

	log := s.upsertLocked(habit.ID, date, !previous, habit.GoalID)
	st, ok := s.entries[key]
	if !ok {
		st = &entryState{confirmed: previous}
		s.entries[key] = st
	}
	st.pending++

	return &PendingToggle{
		store: s,
		key:   key,
		habit: habit,
		date:  date,
		Log:   log,
	}
}

// Resolve settles the toggle with the outcome of the remote write. A success
// records the written value as confirmed. Once the last in-flight write of
// the key settles, a failure puts the cache back on the confirmed value. It
// reports whether the cached value changed.
func (p *PendingToggle) Resolve(err error) bool {
	s := p.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.resolved {
		return false
	}
	p.resolved = true

	st, ok := s.entries[p.key]
	if !ok {
		// store was cleared while the write was in flight
		return false
	}
	if err == nil {
		st.confirmed = p.Log.Completed
	}
	st.pending--
	if st.pending > 0 {
		return false
	}
	delete(s.entries, p.key)

	if err == nil {
		return false
	}
	i, ok := s.pos[p.key]
	if ok && s.logs[i].Completed == st.confirmed {
		return false
	}
	if !ok && !st.confirmed {
		return false
	}
	s.upsertLocked(p.habit.ID, p.date, st.confirmed, p.habit.GoalID)
	return true
}

// Commit writes the optimistic log to remote and resolves the toggle.
// A failed write is reported as a *RollbackError.
func (p *PendingToggle) Commit(ctx context.Context, remote LogWriter) error {
	err := remote.WriteLog(ctx, p.Log)
	restored := p.Resolve(err)
	if err == nil {
		return nil
	}

	logger.Warn("Failed to save completion log", "habit", p.habit.ID, "date", p.date, "restored", restored, "error", err)
	return &RollbackError{
		HabitID:  p.habit.ID,
		Date:     p.date,
		Restored: restored,
		Err:      err,
	}
}

// Toggle flips the completion value for (habit, date) and persists it.
// The cached value changes before the remote write starts.
func (s *Store) Toggle(ctx context.Context, remote LogWriter, habit models.Habit, date string) (models.CompletionLog, error) {
	p := s.BeginToggle(habit, date)
	if err := p.Commit(ctx, remote); err != nil {
		return p.Log, err
	}
	return p.Log, nil
}
