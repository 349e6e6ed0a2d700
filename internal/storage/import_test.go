// ABOUTME: Tests for CSV/JSON import across all four domains.
// ABOUTME: Covers normalization, catalog resolution, dedupe, and rollback.
package storage

import (
	"bytes"
	"strings"
	"testing"
)

func TestImportCardioCSV(t *testing.T) {
	db := setupTestDB(t)

	csvData := `id,date,time,activity_type,distance_miles,duration_minutes,pace_min_per_mile,avg_heart_rate,calories_burned,weight_lbs,notes
1,2025-07-30,07:00,Outdoor Run,3.1,30,9:41,150,310,,morning run
2,2025-07-29,,Cycling,20,60,,,450,,
`
	count, err := db.ImportCardioCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportCardioCSV failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Imported %d rows, want 2", count)
	}

	// Activity types resolve by name, created on demand.
	types, err := db.ListActivityTypes()
	if err != nil {
		t.Fatalf("ListActivityTypes failed: %v", err)
	}
	if len(types) != 2 {
		t.Errorf("Expected 2 created activity types, got %d", len(types))
	}

	workouts, err := db.ListCardioWorkouts()
	if err != nil {
		t.Fatalf("ListCardioWorkouts failed: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("Expected 2 workouts, got %d", len(workouts))
	}

	// The pace column imports verbatim, not recomputed.
	run := workouts[0]
	if run.PaceMinPerMile == nil || *run.PaceMinPerMile != "9:41" {
		t.Errorf("Pace = %v, want \"9:41\"", run.PaceMinPerMile)
	}
}

func TestImportCardioCSVReusesActivityTypes(t *testing.T) {
	db := setupTestDB(t)
	existing := mustCreateActivityType(t, db, "Outdoor Run")

	csvData := `id,date,time,activity_type,distance_miles,duration_minutes,pace_min_per_mile,avg_heart_rate,calories_burned,weight_lbs,notes
1,2025-07-30,,Outdoor Run,3,30,10:00,,,,
`
	if _, err := db.ImportCardioCSV(strings.NewReader(csvData)); err != nil {
		t.Fatalf("ImportCardioCSV failed: %v", err)
	}

	types, err := db.ListActivityTypes()
	if err != nil {
		t.Fatalf("ListActivityTypes failed: %v", err)
	}
	if len(types) != 1 {
		t.Errorf("Expected existing activity type reused, got %d types", len(types))
	}

	workouts, err := db.ListCardioWorkouts()
	if err != nil {
		t.Fatalf("ListCardioWorkouts failed: %v", err)
	}
	if workouts[0].ActivityTypeID != existing.ID {
		t.Errorf("ActivityTypeID = %d, want %d", workouts[0].ActivityTypeID, existing.ID)
	}
}

func TestImportCardioCSVAllOrNothing(t *testing.T) {
	db := setupTestDB(t)

	csvData := `id,date,time,activity_type,distance_miles,duration_minutes,pace_min_per_mile,avg_heart_rate,calories_burned,weight_lbs,notes
1,2025-07-30,,Outdoor Run,3,30,10:00,,,,
2,2025-07-29,,Outdoor Run,not-a-number,30,,,,,
`
	if _, err := db.ImportCardioCSV(strings.NewReader(csvData)); err == nil {
		t.Fatal("Expected error on bad distance")
	}

	workouts, err := db.ListCardioWorkouts()
	if err != nil {
		t.Fatalf("ListCardioWorkouts failed: %v", err)
	}
	if len(workouts) != 0 {
		t.Errorf("Bad row must roll back the whole batch, got %d rows", len(workouts))
	}
}

func TestImportFoodCSVBlankMealTypeBecomesUnknown(t *testing.T) {
	db := setupTestDB(t)

	csvData := `id,date,time,meal_type,food_item,quantity,calories,notes
1,2025-07-30,08:00,,Mystery Bar,1,200,
`
	count, err := db.ImportFoodCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportFoodCSV failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Imported %d rows, want 1", count)
	}

	entries, err := db.ListFoodEntries()
	if err != nil {
		t.Fatalf("ListFoodEntries failed: %v", err)
	}
	if entries[0].MealName != "Unknown" {
		t.Errorf("MealName = %q, want \"Unknown\"", entries[0].MealName)
	}
}

func TestImportHealthCSVNormalizesAndDerivesBMI(t *testing.T) {
	db := setupTestDB(t)

	csvData := `Date,Time,Systolic,Diastolic,BPM,Weight (lbs)
7/30/2025,9:30 AM,120,80,62,150
2025-07-29,14:00,118,78,60,
`
	count, err := db.ImportHealthCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportHealthCSV failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Imported %d rows, want 2", count)
	}

	records, err := db.ListHealthRecords()
	if err != nil {
		t.Fatalf("ListHealthRecords failed: %v", err)
	}
	// Newest first: the normalized 7/30 row leads.
	r := records[0]
	if r.Date != "2025-07-30" {
		t.Errorf("Date = %q, want \"2025-07-30\"", r.Date)
	}
	if r.Time == nil || *r.Time != "09:30" {
		t.Errorf("Time = %v, want \"09:30\"", r.Time)
	}
	if r.BMI == nil || *r.BMI != 25.0 {
		t.Errorf("BMI = %v, want 25.0 derived from 150 lbs", r.BMI)
	}

	// No weight means no BMI.
	if records[1].BMI != nil {
		t.Errorf("BMI = %v, want nil without weight", *records[1].BMI)
	}
}

func TestImportHealthCSVSkipsShortRows(t *testing.T) {
	db := setupTestDB(t)

	csvData := `Date,Time,Systolic,Diastolic,BPM,Weight (lbs)
2025-07-30,09:30,120,80,62,150
partial,row
`
	count, err := db.ImportHealthCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportHealthCSV failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Imported %d rows, want 1 (short row skipped)", count)
	}
}

func TestImportStrengthCSV(t *testing.T) {
	db := setupTestDB(t)

	csvData := `workout_id,date,body_part,notes,exercise_name,set_number,reps,weight,rest_seconds
1,2025-07-30,Legs,,Back Squat,1,5,100,120
1,2025-07-30,Legs,,Back Squat,2,3,200,
1,2025-07-30,Legs,,Deadlift,1,5,225,
`
	count, err := db.ImportStrengthCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportStrengthCSV failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Imported %d sets, want 3", count)
	}

	workouts, err := db.ListWorkouts()
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("Expected rows grouped into 1 workout, got %d", len(workouts))
	}

	w, err := db.GetWorkout(workouts[0].ID)
	if err != nil {
		t.Fatalf("GetWorkout failed: %v", err)
	}
	if len(w.Exercises) != 2 {
		t.Errorf("Expected 2 exercises, got %d", len(w.Exercises))
	}
	if len(w.Exercises[0].Sets) != 2 {
		t.Errorf("Expected 2 sets on first exercise, got %d", len(w.Exercises[0].Sets))
	}
}

func TestImportStrengthCSVDedupeOnReimport(t *testing.T) {
	db := setupTestDB(t)

	csvData := `workout_id,date,body_part,notes,exercise_name,set_number,reps,weight,rest_seconds
1,2025-07-30,Legs,,Back Squat,1,5,100,
`
	if _, err := db.ImportStrengthCSV(strings.NewReader(csvData)); err != nil {
		t.Fatalf("first import failed: %v", err)
	}
	if _, err := db.ImportStrengthCSV(strings.NewReader(csvData)); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	// The workout and exercise match by (date, body_part, notes) and
	// (workout_id, exercise_name); only the sets accumulate.
	workouts, err := db.ListWorkouts()
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(workouts) != 1 {
		t.Errorf("Expected 1 workout after reimport, got %d", len(workouts))
	}

	w, err := db.GetWorkout(workouts[0].ID)
	if err != nil {
		t.Fatalf("GetWorkout failed: %v", err)
	}
	if len(w.Exercises) != 1 {
		t.Errorf("Expected 1 exercise after reimport, got %d", len(w.Exercises))
	}
	if len(w.Exercises[0].Sets) != 2 {
		t.Errorf("Expected sets to accumulate to 2, got %d", len(w.Exercises[0].Sets))
	}
}

func TestImportStrengthJSON(t *testing.T) {
	db := setupTestDB(t)

	jsonData := `[
		{"workout_id": 1, "date": "2025-07-30", "body_part": "Legs", "notes": null,
		 "exercise_name": "Back Squat", "set_number": 1, "reps": 5, "weight": 185, "rest_seconds": 120}
	]`
	count, err := db.ImportStrengthJSON(strings.NewReader(jsonData))
	if err != nil {
		t.Fatalf("ImportStrengthJSON failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Imported %d sets, want 1", count)
	}

	workouts, err := db.ListWorkouts()
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("Expected 1 workout, got %d", len(workouts))
	}
}

func TestStrengthCSVRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	csvData := `workout_id,date,body_part,notes,exercise_name,set_number,reps,weight,rest_seconds
1,2025-07-30,Legs,heavy day,Back Squat,1,5,185,120
`
	if _, err := db.ImportStrengthCSV(strings.NewReader(csvData)); err != nil {
		t.Fatalf("ImportStrengthCSV failed: %v", err)
	}

	exported, err := db.ExportStrengthCSV()
	if err != nil {
		t.Fatalf("ExportStrengthCSV failed: %v", err)
	}

	other := setupTestDB(t)
	count, err := other.ImportStrengthCSV(bytes.NewReader(exported))
	if err != nil {
		t.Fatalf("reimport failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Reimported %d sets, want 1", count)
	}

	workouts, err := other.ListWorkouts()
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	w, err := other.GetWorkout(workouts[0].ID)
	if err != nil {
		t.Fatalf("GetWorkout failed: %v", err)
	}
	s := w.Exercises[0].Sets[0]
	if s.Weight == nil || *s.Weight != 185 {
		t.Errorf("Weight = %v, want 185", s.Weight)
	}
	if s.RestSeconds == nil || *s.RestSeconds != 120 {
		t.Errorf("RestSeconds = %v, want 120", s.RestSeconds)
	}
}
