package migration

import (
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/streaks/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestMigrations(t *testing.T, files map[string]string) fs.FS {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test migration %s: %v", name, err)
		}
	}
	return os.DirFS(dir)
}

func TestGetCurrentVersion(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, setupTestMigrations(t, map[string]string{
		"001_test.sql": "CREATE TABLE test (id INTEGER);",
	}), DriverSQLite)

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}

	if err := runner.SetVersion(5); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}
	version, err = runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 5 {
		t.Errorf("expected version 5, got %d", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		want    []int
		wantErr bool
	}{
		{
			name: "sorted by version",
			files: map[string]string{
				"002_second.sql": "SELECT 2;",
				"001_first.sql":  "SELECT 1;",
				"010_tenth.sql":  "SELECT 10;",
				"README.md":      "ignored",
			},
			want: []int{1, 2, 10},
		},
		{
			name:    "bad filename",
			files:   map[string]string{"init.sql": "SELECT 1;"},
			wantErr: true,
		},
		{
			name:    "non-numeric version",
			files:   map[string]string{"abc_init.sql": "SELECT 1;"},
			wantErr: true,
		},
		{
			name:    "zero version",
			files:   map[string]string{"000_init.sql": "SELECT 1;"},
			wantErr: true,
		},
		{
			name: "duplicate version",
			files: map[string]string{
				"001_a.sql": "SELECT 1;",
				"01_b.sql":  "SELECT 1;",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(setupTestDB(t), setupTestMigrations(t, tt.files), DriverSQLite)
			got, err := runner.ReadMigrationFiles()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadMigrationFiles failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d migrations, got %d", len(tt.want), len(got))
			}
			for i, m := range got {
				if m.Version != tt.want[i] {
					t.Errorf("migration %d: expected version %d, got %d", i, tt.want[i], m.Version)
				}
			}
			if got[0].Name != "first" {
				t.Errorf("expected name 'first', got %q", got[0].Name)
			}
		})
	}
}

func TestApplyMigrations(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, setupTestMigrations(t, map[string]string{
		"001_users.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);",
		"002_posts.sql": "CREATE TABLE posts (id INTEGER PRIMARY KEY, user_id INTEGER);",
	}), DriverSQLite)

	var messages []string
	applied, err := runner.ApplyMigrations(func(msg string) {
		messages = append(messages, msg)
	})
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}
	if len(messages) == 0 {
		t.Error("expected progress messages")
	}

	version, _ := runner.GetCurrentVersion()
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	if _, err := db.Exec("INSERT INTO posts (user_id) VALUES (1)"); err != nil {
		t.Errorf("expected posts table to exist: %v", err)
	}

	applied, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected no migrations on second run, got %d", applied)
	}
}

func TestApplyMigrationsRollsBackFailure(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, setupTestMigrations(t, map[string]string{
		"001_ok.sql":     "CREATE TABLE ok (id INTEGER);",
		"002_broken.sql": "CREATE TABLE broken (id INTEGER; THIS IS NOT SQL",
	}), DriverSQLite)

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected error from broken migration")
	}
	if applied != 1 {
		t.Errorf("expected 1 migration applied before failure, got %d", applied)
	}
	version, _ := runner.GetCurrentVersion()
	if version != 1 {
		t.Errorf("expected version to stay at 1, got %d", version)
	}
}

func TestValidateVersion(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, setupTestMigrations(t, map[string]string{
		"001_init.sql": "CREATE TABLE t (id INTEGER);",
	}), DriverSQLite)

	if err := runner.SetVersion(1); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("expected version 1 to be valid, got %v", err)
	}

	if err := runner.SetVersion(3); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}
	if err := runner.ValidateVersion(); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("expected ErrSchemaTooNew, got %v", err)
	}
	if _, err := runner.ApplyMigrations(nil); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("expected ApplyMigrations to refuse a newer schema, got %v", err)
	}
}

func TestEmbeddedSQLiteMigrations(t *testing.T) {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		t.Fatalf("failed to open embedded migrations: %v", err)
	}

	db := setupTestDB(t)
	runner := NewRunner(db, sub, DriverSQLite)
	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("embedded migrations failed: %v", err)
	}

	for _, table := range []string{"goals", "habits", "completion_logs"} {
		var count int
		err := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&count)
		if err != nil || count != 1 {
			t.Errorf("expected table %s to exist (count=%d, err=%v)", table, count, err)
		}
	}

	pgSub, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		t.Fatalf("failed to open embedded postgres migrations: %v", err)
	}
	pgLatest, err := NewRunner(db, pgSub, DriverPostgres).GetLatestVersion()
	if err != nil {
		t.Fatalf("failed to read postgres migrations: %v", err)
	}
	sqliteLatest, _ := runner.GetLatestVersion()
	if pgLatest != sqliteLatest {
		t.Errorf("dialects out of step: sqlite %d, postgres %d", sqliteLatest, pgLatest)
	}
}
