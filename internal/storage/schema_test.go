// ABOUTME: Tests for schema initialization and lookup seeding.
// ABOUTME: Seeding must run once and never again for a non-empty catalog.
package storage

import (
	"path/filepath"
	"testing"
)

func TestSeedLookups(t *testing.T) {
	db := setupTestDB(t)

	meals, err := db.ListMealTypes()
	if err != nil {
		t.Fatalf("ListMealTypes failed: %v", err)
	}
	if len(meals) != 4 {
		t.Errorf("Expected 4 seeded meal types, got %d", len(meals))
	}

	exercises, err := db.ListExerciseTypes()
	if err != nil {
		t.Fatalf("ListExerciseTypes failed: %v", err)
	}
	if len(exercises) != 9 {
		t.Errorf("Expected 9 seeded exercise types, got %d", len(exercises))
	}

	// Activity types start empty; users define their own.
	activities, err := db.ListActivityTypes()
	if err != nil {
		t.Fatalf("ListActivityTypes failed: %v", err)
	}
	if len(activities) != 0 {
		t.Errorf("Expected no seeded activity types, got %d", len(activities))
	}
}

func TestSeedLookupsRunsOnceOnly(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fittrack.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// Shrink the catalog, then reopen. A non-empty table must not reseed.
	meals, err := db.ListMealTypes()
	if err != nil {
		t.Fatalf("ListMealTypes failed: %v", err)
	}
	if err := db.DeleteMealType(meals[0].ID); err != nil {
		t.Fatalf("DeleteMealType failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer db.Close()

	meals, err = db.ListMealTypes()
	if err != nil {
		t.Fatalf("ListMealTypes failed: %v", err)
	}
	if len(meals) != 3 {
		t.Errorf("Expected 3 meal types after reopen, got %d", len(meals))
	}
}
