// ABOUTME: SQLite schema definition, initialization, and lookup seeding.
// ABOUTME: Eight tables across the cardio, food, health, and strength domains.
package storage

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

// initSchema creates or updates the database schema and seeds the lookup
// catalogs when they are empty.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS activity_types (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS cardio_workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		time TEXT,
		activity_type_id INTEGER NOT NULL,
		distance_miles REAL,
		duration_minutes REAL,
		pace_min_per_mile TEXT,
		avg_heart_rate INTEGER,
		calories_burned INTEGER,
		weight_lbs REAL,
		notes TEXT,
		FOREIGN KEY (activity_type_id) REFERENCES activity_types (id)
	);

	CREATE TABLE IF NOT EXISTS meal_types (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS food_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		time TEXT,
		meal_type_id INTEGER NOT NULL,
		food_item TEXT NOT NULL,
		quantity TEXT,
		calories INTEGER,
		notes TEXT,
		FOREIGN KEY (meal_type_id) REFERENCES meal_types (id)
	);

	CREATE TABLE IF NOT EXISTS health_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		time TEXT,
		systolic INTEGER,
		diastolic INTEGER,
		bpm INTEGER,
		weight REAL,
		bmi REAL
	);

	CREATE TABLE IF NOT EXISTS exercise_types (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		body_part TEXT
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		time TEXT,
		body_part TEXT,
		notes TEXT
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_id INTEGER NOT NULL,
		exercise_name TEXT NOT NULL,
		FOREIGN KEY (workout_id) REFERENCES workouts (id)
	);

	CREATE TABLE IF NOT EXISTS sets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		exercise_id INTEGER NOT NULL,
		set_number INTEGER,
		reps INTEGER,
		weight REAL,
		rest_seconds INTEGER,
		FOREIGN KEY (exercise_id) REFERENCES exercises (id)
	);

	CREATE INDEX IF NOT EXISTS idx_cardio_date ON cardio_workouts(date DESC);
	CREATE INDEX IF NOT EXISTS idx_food_date ON food_log(date DESC);
	CREATE INDEX IF NOT EXISTS idx_health_date ON health_log(date DESC);
	CREATE INDEX IF NOT EXISTS idx_exercises_workout ON exercises(workout_id);
	CREATE INDEX IF NOT EXISTS idx_sets_exercise ON sets(exercise_id);
	`

	if _, err := d.db.Exec(schema); err != nil {
		return err
	}

	return d.seedLookups()
}

// seedLookups populates meal_types and exercise_types on first init only.
func (d *DB) seedLookups() error {
	var count int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM meal_types").Scan(&count); err != nil {
		return fmt.Errorf("count meal types: %w", err)
	}
	if count == 0 {
		for _, name := range models.DefaultMealTypes {
			if _, err := d.db.Exec("INSERT INTO meal_types (name) VALUES (?)", name); err != nil {
				return fmt.Errorf("seed meal type %q: %w", name, err)
			}
		}
	}

	if err := d.db.QueryRow("SELECT COUNT(*) FROM exercise_types").Scan(&count); err != nil {
		return fmt.Errorf("count exercise types: %w", err)
	}
	if count == 0 {
		for _, et := range models.DefaultExerciseTypes {
			if _, err := d.db.Exec(
				"INSERT INTO exercise_types (name, body_part) VALUES (?, ?)",
				et.Name, et.BodyPart,
			); err != nil {
				return fmt.Errorf("seed exercise type %q: %w", et.Name, err)
			}
		}
	}

	return nil
}
