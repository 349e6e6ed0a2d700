// ABOUTME: Tests for the MCP server, tools, and resources.
// ABOUTME: Covers NewServer, the logging tools, and the dashboard queries.
package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/fittrack/internal/storage"
)

func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fittrack.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestNewServer(t *testing.T) {
	db := setupTestDB(t)

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	if server == nil {
		t.Fatal("Expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
}

func TestHandleLogCardio(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, out, err := server.handleLogCardio(ctx, nil, logCardioInput{
		Date:            "2025-07-30",
		ActivityType:    "Outdoor Run",
		DistanceMiles:   3,
		DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("handleLogCardio failed: %v", err)
	}
	if out.ID == 0 {
		t.Error("Expected generated id")
	}
	if out.Pace == nil || *out.Pace != "10:00" {
		t.Errorf("Pace = %v, want \"10:00\"", out.Pace)
	}

	// The activity type was created on demand; logging again reuses it.
	_, _, err = server.handleLogCardio(ctx, nil, logCardioInput{
		Date:         "2025-07-31",
		ActivityType: "outdoor run",
	})
	if err != nil {
		t.Fatalf("second handleLogCardio failed: %v", err)
	}
	types, err := db.ListActivityTypes()
	if err != nil {
		t.Fatalf("ListActivityTypes failed: %v", err)
	}
	if len(types) != 1 {
		t.Errorf("Expected case-insensitive reuse, got %d types", len(types))
	}
}

func TestHandleLogCardioMissingActivity(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	_, _, err := server.handleLogCardio(context.Background(), nil, logCardioInput{Date: "2025-07-30"})
	if err == nil || !strings.Contains(err.Error(), "activity_type") {
		t.Errorf("Expected activity_type error, got %v", err)
	}
}

func TestHandleLogFood(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	_, out, err := server.handleLogFood(context.Background(), nil, logFoodInput{
		Date:     "2025-07-30",
		MealType: "Breakfast",
		FoodItem: "Oatmeal",
		Calories: 350,
	})
	if err != nil {
		t.Fatalf("handleLogFood failed: %v", err)
	}
	if out.ID == 0 {
		t.Error("Expected generated id")
	}

	entries, err := db.ListFoodEntries()
	if err != nil {
		t.Fatalf("ListFoodEntries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].MealName != "Breakfast" {
		t.Errorf("Expected entry under seeded Breakfast, got %+v", entries)
	}
}

func TestHandleLogHealth(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	_, out, err := server.handleLogHealth(context.Background(), nil, logHealthInput{
		Date:      "2025-07-30",
		WeightLbs: 150,
	})
	if err != nil {
		t.Fatalf("handleLogHealth failed: %v", err)
	}
	if out.BMI == nil || *out.BMI != 25.0 {
		t.Errorf("BMI = %v, want 25.0", out.BMI)
	}
}

func TestHandleBMI(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, out, err := server.handleBMI(ctx, nil, bmiInput{WeightLbs: 150})
	if err != nil {
		t.Fatalf("handleBMI failed: %v", err)
	}
	if out.BMI != 25.0 {
		t.Errorf("BMI = %v, want 25.0 at default height", out.BMI)
	}

	if _, _, err := server.handleBMI(ctx, nil, bmiInput{WeightLbs: -1}); err == nil {
		t.Error("Expected error for non-positive weight")
	}
}

func TestHandleCardioDashboard(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	if _, _, err := server.handleLogCardio(ctx, nil, logCardioInput{
		Date:            "2025-01-06",
		ActivityType:    "Outdoor Run",
		DistanceMiles:   3,
		DurationMinutes: 30,
	}); err != nil {
		t.Fatalf("handleLogCardio failed: %v", err)
	}

	_, weeks, err := server.handleCardioDashboard(ctx, nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleCardioDashboard failed: %v", err)
	}
	if len(weeks) != 1 || weeks[0].Week != "2025-01" {
		t.Errorf("weeks = %+v, want one 2025-01 row", weeks)
	}
}

func TestRecentResource(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	if _, _, err := server.handleLogHealth(ctx, nil, logHealthInput{Date: "2025-07-30", WeightLbs: 150}); err != nil {
		t.Fatalf("handleLogHealth failed: %v", err)
	}

	result, err := server.handleRecentResource(ctx, nil)
	if err != nil {
		t.Fatalf("handleRecentResource failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("Expected 1 content entry, got %d", len(result.Contents))
	}
	if !strings.Contains(result.Contents[0].Text, "2025-07-30") {
		t.Errorf("Resource text missing logged record: %s", result.Contents[0].Text)
	}
}
