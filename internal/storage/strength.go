// ABOUTME: Strength workout CRUD with manual Workout→Exercise→Set cascade.
// ABOUTME: Volume aggregation joins sets through exercises to workouts.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

// CreateWorkout inserts a workout and its nested exercises and sets in one
// transaction, filling in the generated ids.
func (d *DB) CreateWorkout(w *models.Workout) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO workouts (date, time, body_part, notes) VALUES (?, ?, ?, ?)",
		w.Date, w.Time, w.BodyPart, w.Notes,
	)
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	if w.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("create workout: %w", err)
	}

	if err := insertExercisesTx(tx, w.ID, w.Exercises); err != nil {
		return err
	}
	for i := range w.Exercises {
		w.Exercises[i].WorkoutID = w.ID
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	return nil
}

// GetWorkout retrieves a workout with its exercises and sets.
func (d *DB) GetWorkout(id int64) (*models.Workout, error) {
	var w models.Workout
	err := d.db.QueryRow(
		"SELECT id, date, time, body_part, notes FROM workouts WHERE id = ?", id,
	).Scan(&w.ID, &w.Date, &w.Time, &w.BodyPart, &w.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}

	exRows, err := d.db.Query(
		"SELECT id, workout_id, exercise_name FROM exercises WHERE workout_id = ? ORDER BY id", id)
	if err != nil {
		return nil, fmt.Errorf("get workout exercises: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		var ex models.Exercise
		if err := exRows.Scan(&ex.ID, &ex.WorkoutID, &ex.ExerciseName); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		w.Exercises = append(w.Exercises, ex)
	}
	if err := exRows.Err(); err != nil {
		return nil, err
	}

	for i := range w.Exercises {
		setRows, err := d.db.Query(`
			SELECT id, exercise_id, set_number, reps, weight, rest_seconds
			FROM sets WHERE exercise_id = ? ORDER BY set_number`, w.Exercises[i].ID)
		if err != nil {
			return nil, fmt.Errorf("get exercise sets: %w", err)
		}
		for setRows.Next() {
			var s models.Set
			if err := setRows.Scan(&s.ID, &s.ExerciseID, &s.SetNumber, &s.Reps,
				&s.Weight, &s.RestSeconds); err != nil {
				setRows.Close()
				return nil, fmt.Errorf("scan set: %w", err)
			}
			w.Exercises[i].Sets = append(w.Exercises[i].Sets, s)
		}
		if err := setRows.Err(); err != nil {
			setRows.Close()
			return nil, err
		}
		setRows.Close()
	}

	return &w, nil
}

// ListWorkouts returns workout headers (no exercises), newest first.
func (d *DB) ListWorkouts() ([]*models.Workout, error) {
	rows, err := d.db.Query(
		"SELECT id, date, time, body_part, notes FROM workouts ORDER BY date DESC, time DESC")
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []*models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.Date, &w.Time, &w.BodyPart, &w.Notes); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, &w)
	}
	return workouts, rows.Err()
}

// UpdateWorkout replaces the workout row and swaps its entire exercise and
// set tree for the one provided, all in one transaction.
func (d *DB) UpdateWorkout(w *models.Workout) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"UPDATE workouts SET date = ?, time = ?, body_part = ?, notes = ? WHERE id = ?",
		w.Date, w.Time, w.BodyPart, w.Notes, w.ID,
	)
	if err != nil {
		return fmt.Errorf("update workout: %w", err)
	}

	if err := deleteWorkoutChildrenTx(tx, w.ID); err != nil {
		return err
	}
	if err := insertExercisesTx(tx, w.ID, w.Exercises); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	return nil
}

// DeleteWorkout removes a workout and cascades through its exercises and
// their sets in one transaction. Missing ids no-op.
func (d *DB) DeleteWorkout(id int64) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	defer tx.Rollback()

	if err := deleteWorkoutChildrenTx(tx, id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM workouts WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

// ListExercises returns every logged exercise for the dashboard picker.
func (d *DB) ListExercises() ([]*models.ExerciseRef, error) {
	rows, err := d.db.Query("SELECT id, exercise_name FROM exercises ORDER BY exercise_name")
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var refs []*models.ExerciseRef
	for rows.Next() {
		var ref models.ExerciseRef
		if err := rows.Scan(&ref.ID, &ref.ExerciseName); err != nil {
			return nil, fmt.Errorf("scan exercise ref: %w", err)
		}
		refs = append(refs, &ref)
	}
	return refs, rows.Err()
}

// StrengthData returns total volume (Σ weight×reps) per workout date for an
// exercise, plus the all-time PR (max single-set weight, 0 when no sets).
// The join routes set → exercise → workout; set and workout id sequences
// are unrelated and must never be matched directly.
func (d *DB) StrengthData(exerciseID int64) (*models.StrengthSeries, error) {
	rows, err := d.db.Query(`
		SELECT w.date, SUM(s.weight * s.reps)
		FROM sets s
		JOIN exercises e ON s.exercise_id = e.id
		JOIN workouts w ON e.workout_id = w.id
		WHERE s.exercise_id = ?
		GROUP BY w.date
		ORDER BY w.date`, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("strength data: %w", err)
	}
	defer rows.Close()

	series := &models.StrengthSeries{}
	for rows.Next() {
		var date string
		var volume sql.NullFloat64
		if err := rows.Scan(&date, &volume); err != nil {
			return nil, fmt.Errorf("scan strength volume: %w", err)
		}
		series.Dates = append(series.Dates, date)
		series.Volumes = append(series.Volumes, volume.Float64)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var pr sql.NullFloat64
	err = d.db.QueryRow("SELECT MAX(weight) FROM sets WHERE exercise_id = ?", exerciseID).Scan(&pr)
	if err != nil {
		return nil, fmt.Errorf("strength pr: %w", err)
	}
	series.PR = pr.Float64

	return series, nil
}

func insertExercisesTx(tx *sql.Tx, workoutID int64, exercises []models.Exercise) error {
	for i := range exercises {
		res, err := tx.Exec(
			"INSERT INTO exercises (workout_id, exercise_name) VALUES (?, ?)",
			workoutID, exercises[i].ExerciseName,
		)
		if err != nil {
			return fmt.Errorf("create exercise: %w", err)
		}
		exID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("create exercise: %w", err)
		}
		exercises[i].ID = exID

		for j := range exercises[i].Sets {
			s := &exercises[i].Sets[j]
			setRes, err := tx.Exec(`
				INSERT INTO sets (exercise_id, set_number, reps, weight, rest_seconds)
				VALUES (?, ?, ?, ?, ?)`,
				exID, s.SetNumber, s.Reps, s.Weight, s.RestSeconds,
			)
			if err != nil {
				return fmt.Errorf("create set: %w", err)
			}
			if s.ID, err = setRes.LastInsertId(); err != nil {
				return fmt.Errorf("create set: %w", err)
			}
			s.ExerciseID = exID
		}
	}
	return nil
}

// deleteWorkoutChildrenTx removes a workout's exercises and their sets.
// The schema declares no ON DELETE CASCADE, so the sequence is explicit.
func deleteWorkoutChildrenTx(tx *sql.Tx, workoutID int64) error {
	_, err := tx.Exec(`
		DELETE FROM sets WHERE exercise_id IN
			(SELECT id FROM exercises WHERE workout_id = ?)`, workoutID)
	if err != nil {
		return fmt.Errorf("delete workout sets: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM exercises WHERE workout_id = ?", workoutID); err != nil {
		return fmt.Errorf("delete workout exercises: %w", err)
	}
	return nil
}
