// ABOUTME: Shared test helpers for the storage package.
// ABOUTME: Provides a throwaway on-disk SQLite database per test.
package storage

import (
	"path/filepath"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fittrack.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func mustCreateActivityType(t *testing.T, db *DB, name string) *models.ActivityType {
	t.Helper()
	at := &models.ActivityType{Name: name}
	if err := db.CreateActivityType(at); err != nil {
		t.Fatalf("CreateActivityType(%q) failed: %v", name, err)
	}
	return at
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }
