// ABOUTME: Repository interface for the fitness data store.
// ABOUTME: Handlers and the MCP server depend on this, not on *DB.
package storage

import (
	"io"

	"github.com/harperreed/fittrack/internal/models"
)

// Repository defines the storage contract shared by all four domains.
// *DB implements it; tests and alternative stores can substitute their own.
type Repository interface {
	// Activity type catalog
	CreateActivityType(at *models.ActivityType) error
	GetActivityType(id int64) (*models.ActivityType, error)
	ListActivityTypes() ([]*models.ActivityType, error)
	UpdateActivityType(at *models.ActivityType) error
	DeleteActivityType(id int64) error

	// Cardio workouts
	CreateCardioWorkout(w *models.CardioWorkout) error
	GetCardioWorkout(id int64) (*models.CardioWorkout, error)
	ListCardioWorkouts() ([]*models.CardioWorkout, error)
	UpdateCardioWorkout(w *models.CardioWorkout) error
	DeleteCardioWorkout(id int64) error
	CardioDashboard() ([]*models.CardioWeek, error)

	// Meal type catalog and food log
	CreateMealType(mt *models.MealType) error
	GetMealType(id int64) (*models.MealType, error)
	ListMealTypes() ([]*models.MealType, error)
	UpdateMealType(mt *models.MealType) error
	DeleteMealType(id int64) error
	CreateFoodEntry(e *models.FoodEntry) error
	GetFoodEntry(id int64) (*models.FoodEntry, error)
	ListFoodEntries() ([]*models.FoodEntry, error)
	UpdateFoodEntry(e *models.FoodEntry) error
	DeleteFoodEntry(id int64) error

	// Health log
	CreateHealthRecord(r *models.HealthRecord) error
	GetHealthRecord(id int64) (*models.HealthRecord, error)
	ListHealthRecords() ([]*models.HealthRecord, error)
	UpdateHealthRecord(r *models.HealthRecord) error
	DeleteHealthRecord(id int64) error
	HealthDashboard() (*models.HealthSeries, error)

	// Strength workouts
	CreateWorkout(w *models.Workout) error
	GetWorkout(id int64) (*models.Workout, error)
	ListWorkouts() ([]*models.Workout, error)
	UpdateWorkout(w *models.Workout) error
	DeleteWorkout(id int64) error
	ListExercises() ([]*models.ExerciseRef, error)
	StrengthData(exerciseID int64) (*models.StrengthSeries, error)

	// Exercise type catalog
	CreateExerciseType(et *models.ExerciseType) error
	GetExerciseType(id int64) (*models.ExerciseType, error)
	ListExerciseTypes() ([]*models.ExerciseType, error)
	UpdateExerciseType(et *models.ExerciseType) error
	DeleteExerciseType(id int64) error

	// Export
	ExportCardioCSV() ([]byte, error)
	ExportCardioJSON() ([]byte, error)
	ExportFoodCSV() ([]byte, error)
	ExportFoodJSON() ([]byte, error)
	ExportHealthCSV() ([]byte, error)
	ExportHealthJSON() ([]byte, error)
	ExportStrengthCSV() ([]byte, error)
	ExportStrengthJSON() ([]byte, error)
	ExportStrengthYAML() ([]byte, error)

	// Import (all-or-nothing per call)
	ImportCardioCSV(r io.Reader) (int, error)
	ImportFoodCSV(r io.Reader) (int, error)
	ImportHealthCSV(r io.Reader) (int, error)
	ImportStrengthCSV(r io.Reader) (int, error)
	ImportStrengthJSON(r io.Reader) (int, error)

	// Lifecycle
	Close() error
}
