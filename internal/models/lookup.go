// ABOUTME: Lookup catalog models: activity types, meal types, exercise types.
// ABOUTME: Each classifies logged records by a human-readable name.
package models

// ActivityType classifies a cardio workout (e.g. "Outdoor Run", "Cycling").
type ActivityType struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// MealType classifies a food log entry (e.g. "Breakfast").
// The table is seeded with Breakfast/Lunch/Dinner/Snack on first init.
type MealType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ExerciseType is a catalog entry for the strength exercise picker.
// Exercises reference it by name only, never by foreign key.
type ExerciseType struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	BodyPart *string `json:"body_part"`
}

// DefaultMealTypes are inserted when the meal_types table is empty.
var DefaultMealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

// DefaultExerciseTypes are inserted when the exercise_types table is empty.
var DefaultExerciseTypes = []ExerciseType{
	{Name: "Barbell Bench Press", BodyPart: strPtr("Chest")},
	{Name: "Incline Dumbbell Press", BodyPart: strPtr("Chest")},
	{Name: "Back Squat", BodyPart: strPtr("Legs")},
	{Name: "Deadlift", BodyPart: strPtr("Legs")},
	{Name: "Lat Pulldown", BodyPart: strPtr("Back")},
	{Name: "Face Pull", BodyPart: strPtr("Back")},
	{Name: "Incline Dumbbell Curl", BodyPart: strPtr("Biceps")},
	{Name: "Preacher Curl", BodyPart: strPtr("Biceps")},
	{Name: "Triceps Rope Pressdown", BodyPart: strPtr("Triceps")},
}

func strPtr(s string) *string { return &s }
