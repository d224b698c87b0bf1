package database

import (
	"path/filepath"
	"testing"
)

// TestDatabaseIntegration tests the complete database lifecycle against
// SQLite: open, migrate, insert, unique violation detection.
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "test_integration.db")

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Migrations must have created the journey tables
	tables := []string{"users", "children", "journey_bot_sessions", "journey_bot_responses", "user_journey_progress", "user_journey_badges"}

	for _, table := range tables {
		query := "SELECT name FROM sqlite_master WHERE type='table' AND name=?"
		var name string
		if err := db.QueryRow(query, table).Scan(&name); err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// Running migrations again must be a no-op
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Re-running migrations failed: %v", err)
	}
}

func TestExecReturningID(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newMigratedDB(t)

	firstID, err := db.ExecReturningID(
		"INSERT INTO users (email, name) VALUES (?, ?)",
		"first@example.com", "First Parent")
	if err != nil {
		t.Fatalf("Failed to insert first user: %v", err)
	}

	secondID, err := db.ExecReturningID(
		"INSERT INTO users (email, name) VALUES (?, ?)",
		"second@example.com", "Second Parent")
	if err != nil {
		t.Fatalf("Failed to insert second user: %v", err)
	}

	if firstID == 0 {
		t.Error("expected a non-zero id for the first insert")
	}
	if secondID <= firstID {
		t.Errorf("expected ids to increase, got %d then %d", firstID, secondID)
	}
}

func TestIsUniqueViolationSQLite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newMigratedDB(t)

	_, err := db.Exec("INSERT INTO users (email, name) VALUES (?, ?)",
		"parent@example.com", "Parent")
	if err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}

	_, err = db.Exec("INSERT INTO users (email, name) VALUES (?, ?)",
		"parent@example.com", "Duplicate Parent")
	if err == nil {
		t.Fatal("expected a unique violation on duplicate email")
	}
	if !db.IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation() = false for %v, want true", err)
	}

	// An error against a missing table is not a unique violation
	_, err = db.Exec("INSERT INTO no_such_table (email) VALUES (?)", "x")
	if err == nil {
		t.Fatal("expected an error inserting into a missing table")
	}
	if db.IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation() = true for %v, want false", err)
	}

	if db.IsUniqueViolation(nil) {
		t.Error("IsUniqueViolation(nil) = true, want false")
	}
}

func TestTransactionCommitAndRollback(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newMigratedDB(t)

	// Committed insert is visible
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	if _, err := tx.Exec("INSERT INTO users (email, name) VALUES (?, ?)",
		"committed@example.com", "Committed"); err != nil {
		tx.Rollback()
		t.Fatalf("Failed to insert in transaction: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Failed to commit transaction: %v", err)
	}

	// Rolled back insert is not
	tx, err = db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	if _, err := tx.Exec("INSERT INTO users (email, name) VALUES (?, ?)",
		"rolledback@example.com", "Rolled Back"); err != nil {
		tx.Rollback()
		t.Fatalf("Failed to insert in transaction: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Failed to roll back transaction: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "committed@example.com").Scan(&count); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("expected committed user to exist, count = %d", count)
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "rolledback@example.com").Scan(&count); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 0 {
		t.Errorf("expected rolled back user to be absent, count = %d", count)
	}
}

func newMigratedDB(t *testing.T) *DB {
	t.Helper()

	db, err := Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}
