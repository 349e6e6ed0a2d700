// ABOUTME: Tests for cardio CRUD, pace derivation, and the weekly dashboard.
// ABOUTME: Pace depends on the activity type name, not on the numbers alone.
package storage

import (
	"errors"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
)

func TestCreateCardioWorkoutDerivesPaceForRuns(t *testing.T) {
	db := setupTestDB(t)
	run := mustCreateActivityType(t, db, "Outdoor Run")

	w := models.NewCardioWorkout("2025-07-30", run.ID)
	w.DistanceMiles = fptr(3.0)
	w.DurationMinutes = fptr(30.0)

	if err := db.CreateCardioWorkout(w); err != nil {
		t.Fatalf("CreateCardioWorkout failed: %v", err)
	}
	if w.ID == 0 {
		t.Error("Expected generated id")
	}

	got, err := db.GetCardioWorkout(w.ID)
	if err != nil {
		t.Fatalf("GetCardioWorkout failed: %v", err)
	}
	if got.PaceMinPerMile == nil || *got.PaceMinPerMile != "10:00" {
		t.Errorf("Pace = %v, want \"10:00\"", got.PaceMinPerMile)
	}
	if got.ActivityName != "Outdoor Run" {
		t.Errorf("ActivityName = %q, want \"Outdoor Run\"", got.ActivityName)
	}
}

func TestCreateCardioWorkoutNoPaceForNonRunning(t *testing.T) {
	db := setupTestDB(t)
	cycle := mustCreateActivityType(t, db, "Cycling")

	w := models.NewCardioWorkout("2025-07-30", cycle.ID)
	w.DistanceMiles = fptr(20.0)
	w.DurationMinutes = fptr(60.0)
	w.PaceMinPerMile = sptr("3:00") // caller-set pace must be discarded

	if err := db.CreateCardioWorkout(w); err != nil {
		t.Fatalf("CreateCardioWorkout failed: %v", err)
	}

	got, err := db.GetCardioWorkout(w.ID)
	if err != nil {
		t.Fatalf("GetCardioWorkout failed: %v", err)
	}
	if got.PaceMinPerMile != nil {
		t.Errorf("Pace = %q, want nil for non-running activity", *got.PaceMinPerMile)
	}
}

func TestCreateCardioWorkoutNoPaceWithoutDistance(t *testing.T) {
	db := setupTestDB(t)
	run := mustCreateActivityType(t, db, "Treadmill")

	w := models.NewCardioWorkout("2025-07-30", run.ID)
	w.DurationMinutes = fptr(30.0)

	if err := db.CreateCardioWorkout(w); err != nil {
		t.Fatalf("CreateCardioWorkout failed: %v", err)
	}

	got, err := db.GetCardioWorkout(w.ID)
	if err != nil {
		t.Fatalf("GetCardioWorkout failed: %v", err)
	}
	if got.PaceMinPerMile != nil {
		t.Errorf("Pace = %q, want nil without distance", *got.PaceMinPerMile)
	}
}

func TestUpdateCardioWorkoutRederivesPace(t *testing.T) {
	db := setupTestDB(t)
	run := mustCreateActivityType(t, db, "Outdoor Run")

	w := models.NewCardioWorkout("2025-07-30", run.ID)
	w.DistanceMiles = fptr(3.0)
	w.DurationMinutes = fptr(30.0)
	if err := db.CreateCardioWorkout(w); err != nil {
		t.Fatalf("CreateCardioWorkout failed: %v", err)
	}

	w.DurationMinutes = fptr(27.0)
	if err := db.UpdateCardioWorkout(w); err != nil {
		t.Fatalf("UpdateCardioWorkout failed: %v", err)
	}

	got, err := db.GetCardioWorkout(w.ID)
	if err != nil {
		t.Fatalf("GetCardioWorkout failed: %v", err)
	}
	if got.PaceMinPerMile == nil || *got.PaceMinPerMile != "9:00" {
		t.Errorf("Pace = %v, want \"9:00\"", got.PaceMinPerMile)
	}
}

func TestGetCardioWorkoutNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetCardioWorkout(9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCardioWorkoutMissingIDNoOp(t *testing.T) {
	db := setupTestDB(t)

	if err := db.DeleteCardioWorkout(9999); err != nil {
		t.Errorf("Delete of missing id should no-op, got %v", err)
	}
}

func TestListCardioWorkoutsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	run := mustCreateActivityType(t, db, "Outdoor Run")

	for _, date := range []string{"2025-07-01", "2025-07-15", "2025-07-10"} {
		w := models.NewCardioWorkout(date, run.ID)
		if err := db.CreateCardioWorkout(w); err != nil {
			t.Fatalf("CreateCardioWorkout failed: %v", err)
		}
	}

	workouts, err := db.ListCardioWorkouts()
	if err != nil {
		t.Fatalf("ListCardioWorkouts failed: %v", err)
	}
	if len(workouts) != 3 {
		t.Fatalf("Expected 3 workouts, got %d", len(workouts))
	}
	if workouts[0].Date != "2025-07-15" {
		t.Errorf("Expected newest first, got %s", workouts[0].Date)
	}
}

func TestCardioDashboardGroupsByWeek(t *testing.T) {
	db := setupTestDB(t)
	run := mustCreateActivityType(t, db, "Outdoor Run")

	// Two runs in one week, one in another. 2025-01-06 and 2025-01-07 share
	// Monday-based week 01; 2025-02-10 falls in week 06.
	add := func(date string, distance, duration *float64, calories *int) {
		t.Helper()
		w := models.NewCardioWorkout(date, run.ID)
		w.DistanceMiles = distance
		w.DurationMinutes = duration
		w.CaloriesBurned = calories
		if err := db.CreateCardioWorkout(w); err != nil {
			t.Fatalf("CreateCardioWorkout failed: %v", err)
		}
	}
	add("2025-01-06", fptr(3.0), fptr(30.0), iptr(300)) // 10.0 min/mi
	add("2025-01-07", fptr(5.0), fptr(40.0), iptr(500)) // 8.0 min/mi
	add("2025-02-10", fptr(2.0), fptr(20.0), iptr(200))

	weeks, err := db.CardioDashboard()
	if err != nil {
		t.Fatalf("CardioDashboard failed: %v", err)
	}
	if len(weeks) != 2 {
		t.Fatalf("Expected 2 weeks, got %d", len(weeks))
	}

	first := weeks[0]
	if first.Week != "2025-01" {
		t.Errorf("Week = %q, want \"2025-01\"", first.Week)
	}
	if first.TotalDistance != 8.0 {
		t.Errorf("TotalDistance = %v, want 8.0", first.TotalDistance)
	}
	if first.TotalCalories != 800 {
		t.Errorf("TotalCalories = %v, want 800", first.TotalCalories)
	}
	if first.AvgPaceMinutes == nil || *first.AvgPaceMinutes != 9.0 {
		t.Errorf("AvgPaceMinutes = %v, want 9.0", first.AvgPaceMinutes)
	}
}

func TestCardioDashboardPaceExcludesZeroDistance(t *testing.T) {
	db := setupTestDB(t)
	run := mustCreateActivityType(t, db, "Outdoor Run")

	w1 := models.NewCardioWorkout("2025-01-06", run.ID)
	w1.DistanceMiles = fptr(3.0)
	w1.DurationMinutes = fptr(30.0)
	if err := db.CreateCardioWorkout(w1); err != nil {
		t.Fatalf("CreateCardioWorkout failed: %v", err)
	}

	// Same week, no distance. Included in sums, excluded from pace.
	w2 := models.NewCardioWorkout("2025-01-07", run.ID)
	w2.DurationMinutes = fptr(45.0)
	w2.CaloriesBurned = iptr(400)
	if err := db.CreateCardioWorkout(w2); err != nil {
		t.Fatalf("CreateCardioWorkout failed: %v", err)
	}

	weeks, err := db.CardioDashboard()
	if err != nil {
		t.Fatalf("CardioDashboard failed: %v", err)
	}
	if len(weeks) != 1 {
		t.Fatalf("Expected 1 week, got %d", len(weeks))
	}
	if weeks[0].AvgPaceMinutes == nil || *weeks[0].AvgPaceMinutes != 10.0 {
		t.Errorf("AvgPaceMinutes = %v, want 10.0", weeks[0].AvgPaceMinutes)
	}
	if weeks[0].TotalCalories != 400 {
		t.Errorf("TotalCalories = %v, want 400", weeks[0].TotalCalories)
	}
}

func TestActivityTypeCRUD(t *testing.T) {
	db := setupTestDB(t)

	at := &models.ActivityType{Name: "Rowing", Description: sptr("Erg sessions")}
	if err := db.CreateActivityType(at); err != nil {
		t.Fatalf("CreateActivityType failed: %v", err)
	}

	got, err := db.GetActivityType(at.ID)
	if err != nil {
		t.Fatalf("GetActivityType failed: %v", err)
	}
	if got.Name != "Rowing" {
		t.Errorf("Name = %q, want \"Rowing\"", got.Name)
	}
	if got.Description == nil || *got.Description != "Erg sessions" {
		t.Errorf("Description = %v, want \"Erg sessions\"", got.Description)
	}

	got.Name = "Indoor Rowing"
	if err := db.UpdateActivityType(got); err != nil {
		t.Fatalf("UpdateActivityType failed: %v", err)
	}
	got, err = db.GetActivityType(at.ID)
	if err != nil {
		t.Fatalf("GetActivityType after update failed: %v", err)
	}
	if got.Name != "Indoor Rowing" {
		t.Errorf("Name = %q, want \"Indoor Rowing\"", got.Name)
	}

	if err := db.DeleteActivityType(at.ID); err != nil {
		t.Fatalf("DeleteActivityType failed: %v", err)
	}
	if _, err := db.GetActivityType(at.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}
