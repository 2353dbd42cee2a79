package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/julianstephens/streaks/internal/cache"
	"github.com/julianstephens/streaks/internal/cache/mocks"
	"github.com/julianstephens/streaks/internal/models"
)

const owner = "user-1"

var fixedNow = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func newStore() *cache.Store {
	return cache.New(owner, cache.WithClock(func() time.Time { return fixedNow }))
}

func habit(id, goal string) models.Habit {
	return models.Habit{ID: id, Title: id, GoalID: goal, OwnerID: owner, CreatedAt: fixedNow}
}

func TestUpsertInsertsThenUpdatesInPlace(t *testing.T) {
	s := newStore()

	inserted := s.Upsert("h1", "2024-03-15", true, "g1")
	want := models.CompletionLog{
		ID:        "h1_2024-03-15",
		HabitID:   "h1",
		GoalID:    "g1",
		Date:      "2024-03-15",
		Completed: true,
		OwnerID:   owner,
		CreatedAt: fixedNow,
	}
	if inserted != want {
		t.Fatalf("Upsert() = %+v, want %+v", inserted, want)
	}

	got, ok := s.Get("h1", "2024-03-15")
	if !ok || got != want {
		t.Fatalf("Get() = %+v, %v; want %+v", got, ok, want)
	}

	s.Upsert("h1", "2024-03-15", false, "g1")
	logs := s.Logs()
	if len(logs) != 1 {
		t.Fatalf("expected update in place, got %d logs", len(logs))
	}
	if logs[0].Completed {
		t.Error("expected completed to be false after second upsert")
	}
	if !logs[0].CreatedAt.Equal(fixedNow) {
		t.Error("expected created_at to be preserved on update")
	}
}

func TestLogsReturnsCopy(t *testing.T) {
	s := newStore()
	s.Upsert("h1", "2024-03-15", true, "g1")

	logs := s.Logs()
	logs[0].Completed = false

	if !s.Completed("h1", "2024-03-15") {
		t.Error("mutating the returned slice changed the cache")
	}
}

func TestUpsertUpdatesLoadedLog(t *testing.T) {
	s := newStore()
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s.ReplaceLogs([]models.CompletionLog{{
		ID: "remote-id", HabitID: "h1", GoalID: "g1", Date: "2024-03-14",
		Completed: true, OwnerID: owner, CreatedAt: created,
	}})

	got := s.Upsert("h1", "2024-03-14", false, "g1")
	if got.ID != "remote-id" || !got.CreatedAt.Equal(created) {
		t.Errorf("expected remote fields to be preserved, got %+v", got)
	}
	if len(s.Logs()) != 1 {
		t.Errorf("expected 1 log, got %d", len(s.Logs()))
	}
}

func TestToggleVisibleBeforeRemoteWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mocks.NewMockLogWriter(ctrl)
	s := newStore()
	h := habit("h1", "g1")

	remote.EXPECT().
		WriteLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log models.CompletionLog) error {
			if !s.Completed("h1", "2024-03-15") {
				t.Error("expected optimistic value to be visible during the remote write")
			}
			if !s.Pending("h1", "2024-03-15") {
				t.Error("expected key to be pending during the remote write")
			}
			if log.ID != "h1_2024-03-15" || !log.Completed || log.GoalID != "g1" {
				t.Errorf("unexpected log written: %+v", log)
			}
			return nil
		})

	log, err := s.Toggle(context.Background(), remote, h, "2024-03-15")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !log.Completed {
		t.Error("expected toggle to mark the habit completed")
	}
	if s.Pending("h1", "2024-03-15") {
		t.Error("expected pending flag to clear after a successful write")
	}
}

func TestToggleRollsBackOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		initial *bool
		want    bool
	}{
		{name: "absent", initial: nil, want: false},
		{name: "completed", initial: boolPtr(true), want: true},
		{name: "not completed", initial: boolPtr(false), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			remote := mocks.NewMockLogWriter(ctrl)
			s := newStore()
			if tt.initial != nil {
				s.Upsert("h1", "2024-03-15", *tt.initial, "g1")
			}

			offline := errors.New("offline")
			remote.EXPECT().WriteLog(gomock.Any(), gomock.Any()).Return(offline)

			_, err := s.Toggle(context.Background(), remote, habit("h1", "g1"), "2024-03-15")
			var rbErr *cache.RollbackError
			if !errors.As(err, &rbErr) {
				t.Fatalf("expected *RollbackError, got %v", err)
			}
			if !rbErr.Restored {
				t.Error("expected the previous value to be restored")
			}
			if !errors.Is(err, offline) {
				t.Error("expected rollback error to wrap the remote error")
			}
			if got := s.Completed("h1", "2024-03-15"); got != tt.want {
				t.Errorf("Completed() = %v, want %v", got, tt.want)
			}
			if s.Pending("h1", "2024-03-15") {
				t.Error("expected pending flag to clear after rollback")
			}
		})
	}
}

func TestResolveSupersededByNewerToggle(t *testing.T) {
	s := newStore()
	h := habit("h1", "g1")

	first := s.BeginToggle(h, "2024-03-15")
	second := s.BeginToggle(h, "2024-03-15")
	if first.Value() != true || second.Value() != false {
		t.Fatalf("unexpected optimistic values %v, %v", first.Value(), second.Value())
	}

	if second.Resolve(nil) {
		t.Error("successful write must not roll back")
	}
	if first.Resolve(errors.New("timeout")) {
		t.Error("stale failure must not roll back a newer write")
	}
	if s.Completed("h1", "2024-03-15") {
		t.Error("expected the newer value to survive")
	}
}

func TestResolveNewestFailureRestoresItsPrevious(t *testing.T) {
	s := newStore()
	h := habit("h1", "g1")

	first := s.BeginToggle(h, "2024-03-15")
	second := s.BeginToggle(h, "2024-03-15")

	first.Resolve(nil)
	if !second.Resolve(errors.New("timeout")) {
		t.Fatal("expected newest failed write to roll back")
	}
	if !s.Completed("h1", "2024-03-15") {
		t.Error("expected value written by the first toggle to be restored")
	}
}

func TestResolveBothFailuresRestoreConfirmedValue(t *testing.T) {
	tests := []struct {
		name        string
		newestFirst bool
	}{
		{name: "older fails first", newestFirst: false},
		{name: "newer fails first", newestFirst: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore()
			h := habit("h1", "g1")

			first := s.BeginToggle(h, "2024-03-15")
			second := s.BeginToggle(h, "2024-03-15")

			timeout := errors.New("timeout")
			if tt.newestFirst {
				if second.Resolve(timeout) {
					t.Error("cache must wait for the write still in flight")
				}
				first.Resolve(timeout)
			} else {
				if first.Resolve(timeout) {
					t.Error("cache must wait for the write still in flight")
				}
				second.Resolve(timeout)
			}

			if s.Completed("h1", "2024-03-15") {
				t.Error("expected the never-written value to be gone")
			}
			if s.Pending("h1", "2024-03-15") {
				t.Error("expected no pending write")
			}
		})
	}
}

func TestResolveFailureAfterConfirmedLoadedValue(t *testing.T) {
	s := newStore()
	h := habit("h1", "g1")
	s.Upsert("h1", "2024-03-15", true, "g1")

	first := s.BeginToggle(h, "2024-03-15")
	second := s.BeginToggle(h, "2024-03-15")
	first.Resolve(errors.New("timeout"))
	second.Resolve(errors.New("timeout"))

	if !s.Completed("h1", "2024-03-15") {
		t.Error("expected the loaded value to survive two failed writes")
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	s := newStore()
	p := s.BeginToggle(habit("h1", "g1"), "2024-03-15")

	if !p.Resolve(errors.New("boom")) {
		t.Fatal("expected rollback")
	}
	s.Upsert("h1", "2024-03-15", true, "g1")
	if p.Resolve(errors.New("boom")) {
		t.Error("second resolve must be a no-op")
	}
	if !s.Completed("h1", "2024-03-15") {
		t.Error("second resolve changed the cache")
	}
}

func TestUpsertSupersedesPendingToggle(t *testing.T) {
	s := newStore()
	p := s.BeginToggle(habit("h1", "g1"), "2024-03-15")
	s.Upsert("h1", "2024-03-15", false, "g1")

	if p.Resolve(errors.New("boom")) {
		t.Error("expected rollback to be skipped after a newer upsert")
	}
}

func TestReplaceLogsKeepsPendingValue(t *testing.T) {
	s := newStore()
	h := habit("h1", "g1")
	p := s.BeginToggle(h, "2024-03-15")

	stale := []models.CompletionLog{
		{ID: "h1_2024-03-15", HabitID: "h1", GoalID: "g1", Date: "2024-03-15", Completed: false, OwnerID: owner},
		{ID: "h2_2024-03-15", HabitID: "h2", GoalID: "g1", Date: "2024-03-15", Completed: true, OwnerID: owner},
	}
	s.ReplaceLogs(stale)

	if !s.Completed("h1", "2024-03-15") {
		t.Error("stale snapshot overwrote a pending optimistic value")
	}
	if !s.Completed("h2", "2024-03-15") {
		t.Error("expected snapshot value for a non-pending key")
	}
	if n := len(s.Logs()); n != 2 {
		t.Errorf("expected 2 logs, got %d", n)
	}

	p.Resolve(nil)
	s.ReplaceLogs(stale)
	if s.Completed("h1", "2024-03-15") {
		t.Error("expected snapshot to win once the toggle is settled")
	}
}

func TestReplaceLogsKeepsPendingMissingFromSnapshot(t *testing.T) {
	s := newStore()
	s.BeginToggle(habit("h1", "g1"), "2024-03-15")

	s.ReplaceLogs(nil)

	if !s.Completed("h1", "2024-03-15") {
		t.Error("expected pending log to survive an empty snapshot")
	}
}

func TestReplaceLogsLastDuplicateWins(t *testing.T) {
	s := newStore()
	s.ReplaceLogs([]models.CompletionLog{
		{HabitID: "h1", GoalID: "g1", Date: "2024-03-15", Completed: true, OwnerID: owner},
		{HabitID: "h1", GoalID: "g1", Date: "2024-03-15", Completed: false, OwnerID: owner},
	})
	if s.Completed("h1", "2024-03-15") {
		t.Error("expected the later duplicate to be the visible log")
	}
}

func TestGoalHabitsOrdering(t *testing.T) {
	s := newStore()
	base := fixedNow
	s.ReplaceAll(
		[]models.Goal{
			{ID: "g2", Title: "Second", CreatedAt: base.Add(time.Hour)},
			{ID: "g1", Title: "First", CreatedAt: base},
		},
		[]models.Habit{
			{ID: "b", Title: "B", GoalID: "g1", CreatedAt: base.Add(2 * time.Minute)},
			{ID: "a", Title: "A", GoalID: "g1", CreatedAt: base.Add(time.Minute)},
			{ID: "c", Title: "C", GoalID: "g2", CreatedAt: base},
		},
		nil,
	)

	goals := s.Goals()
	if goals[0].ID != "g1" || goals[1].ID != "g2" {
		t.Errorf("goals not in creation order: %v, %v", goals[0].ID, goals[1].ID)
	}
	hs := s.GoalHabits("g1")
	if len(hs) != 2 || hs[0].ID != "a" || hs[1].ID != "b" {
		t.Errorf("GoalHabits(g1) = %+v", hs)
	}
	if _, ok := s.Goal("missing"); ok {
		t.Error("expected missing goal lookup to fail")
	}
	if h, ok := s.Habit("c"); !ok || h.GoalID != "g2" {
		t.Errorf("Habit(c) = %+v, %v", h, ok)
	}
}

func TestRefreshDropsInvalidRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mocks.NewMockFetcher(ctrl)
	ctx := context.Background()

	remote.EXPECT().FetchGoals(ctx, owner).Return([]models.Goal{
		{ID: "g1", Title: "Fitness", Weekdays: models.WeekdaySet{time.Friday, time.Monday}, OwnerID: owner},
		{ID: "g2", Title: "", OwnerID: owner},
		{ID: "g3", Title: "Foreign", OwnerID: "someone-else"},
	}, nil)
	remote.EXPECT().FetchHabits(ctx, owner).Return([]models.Habit{
		{ID: "h1", Title: "Run", GoalID: "g1", OwnerID: owner},
		{ID: "h2", Title: "Orphan", OwnerID: owner},
	}, nil)
	remote.EXPECT().FetchLogs(ctx, owner).Return([]models.CompletionLog{
		{ID: "h1_2024-03-15", HabitID: "h1", GoalID: "g1", Date: "2024-03-15", Completed: true, OwnerID: owner},
		{ID: "bad", HabitID: "h1", GoalID: "g1", Date: "15/03/2024", Completed: true, OwnerID: owner},
	}, nil)

	s := newStore()
	if err := s.Refresh(ctx, remote); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	goals := s.Goals()
	if len(goals) != 1 || goals[0].ID != "g1" {
		t.Fatalf("Goals() = %+v", goals)
	}
	if goals[0].Weekdays[0] != time.Monday {
		t.Error("expected weekdays to be normalized")
	}
	if n := len(s.Habits()); n != 1 {
		t.Errorf("expected 1 habit, got %d", n)
	}
	if n := len(s.Logs()); n != 1 {
		t.Errorf("expected 1 log, got %d", n)
	}
}

func TestRefreshPropagatesFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mocks.NewMockFetcher(ctrl)
	s := newStore()
	s.Upsert("h1", "2024-03-15", true, "g1")

	remote.EXPECT().FetchGoals(gomock.Any(), owner).Return(nil, errors.New("connection refused"))

	if err := s.Refresh(context.Background(), remote); err == nil {
		t.Fatal("expected error")
	}
	if !s.Completed("h1", "2024-03-15") {
		t.Error("failed refresh must leave the cache untouched")
	}
}

func TestReset(t *testing.T) {
	t.Run("clears on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemote(ctrl)
		s := newStore()
		s.ReplaceAll([]models.Goal{{ID: "g1", Title: "x"}}, []models.Habit{habit("h1", "g1")}, nil)
		p := s.BeginToggle(habit("h1", "g1"), "2024-03-15")

		remote.EXPECT().DeleteAllOwnerData(gomock.Any(), owner).Return(nil)
		if err := s.Reset(context.Background(), remote); err != nil {
			t.Fatalf("Reset() error = %v", err)
		}
		if len(s.Goals()) != 0 || len(s.Habits()) != 0 || len(s.Logs()) != 0 {
			t.Error("expected every collection to be empty")
		}
		if p.Resolve(errors.New("late failure")) {
			t.Error("toggle resolved after a reset must not write back")
		}
		if len(s.Logs()) != 0 {
			t.Error("late resolve resurrected a log")
		}
	})

	t.Run("keeps data on failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemote(ctrl)
		s := newStore()
		s.ReplaceAll([]models.Goal{{ID: "g1", Title: "x"}}, nil, nil)

		remote.EXPECT().DeleteAllOwnerData(gomock.Any(), owner).Return(errors.New("denied"))
		if err := s.Reset(context.Background(), remote); err == nil {
			t.Fatal("expected error")
		}
		if len(s.Goals()) != 1 {
			t.Error("expected goals to be kept")
		}
	})
}

func TestConcurrentToggles(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mocks.NewMockLogWriter(ctrl)
	remote.EXPECT().WriteLog(gomock.Any(), gomock.Any()).Return(nil).Times(50)
	s := newStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i).Format("2006-01-02")
			if _, err := s.Toggle(context.Background(), remote, habit("h1", "g1"), day); err != nil {
				t.Errorf("Toggle() error = %v", err)
			}
			_ = s.Logs()
		}(i)
	}
	wg.Wait()

	if n := len(s.Logs()); n != 50 {
		t.Errorf("expected 50 logs, got %d", n)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
