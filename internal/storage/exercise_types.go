// ABOUTME: ExerciseType catalog CRUD for the strength domain.
// ABOUTME: Names are UNIQUE; duplicates surface as ErrAlreadyExists.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

// CreateExerciseType inserts a catalog entry. A duplicate name returns
// ErrAlreadyExists rather than a raw constraint error.
func (d *DB) CreateExerciseType(et *models.ExerciseType) error {
	res, err := d.db.Exec(
		"INSERT INTO exercise_types (name, body_part) VALUES (?, ?)",
		et.Name, et.BodyPart,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("exercise type %q: %w", et.Name, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("create exercise type: %w", err)
	}
	et.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create exercise type: %w", err)
	}
	return nil
}

// GetExerciseType retrieves a catalog entry by id.
func (d *DB) GetExerciseType(id int64) (*models.ExerciseType, error) {
	var et models.ExerciseType
	err := d.db.QueryRow(
		"SELECT id, name, body_part FROM exercise_types WHERE id = ?", id,
	).Scan(&et.ID, &et.Name, &et.BodyPart)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("exercise type %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get exercise type: %w", err)
	}
	return &et, nil
}

// ListExerciseTypes returns the catalog ordered by body part then name.
func (d *DB) ListExerciseTypes() ([]*models.ExerciseType, error) {
	rows, err := d.db.Query("SELECT id, name, body_part FROM exercise_types ORDER BY body_part, name")
	if err != nil {
		return nil, fmt.Errorf("list exercise types: %w", err)
	}
	defer rows.Close()

	var types []*models.ExerciseType
	for rows.Next() {
		var et models.ExerciseType
		if err := rows.Scan(&et.ID, &et.Name, &et.BodyPart); err != nil {
			return nil, fmt.Errorf("scan exercise type: %w", err)
		}
		types = append(types, &et)
	}
	return types, rows.Err()
}

// UpdateExerciseType replaces a catalog entry in place. Missing ids no-op;
// a duplicate name returns ErrAlreadyExists.
func (d *DB) UpdateExerciseType(et *models.ExerciseType) error {
	_, err := d.db.Exec(
		"UPDATE exercise_types SET name = ?, body_part = ? WHERE id = ?",
		et.Name, et.BodyPart, et.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("exercise type %q: %w", et.Name, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("update exercise type: %w", err)
	}
	return nil
}

// DeleteExerciseType removes a catalog entry. Missing ids no-op.
func (d *DB) DeleteExerciseType(id int64) error {
	if _, err := d.db.Exec("DELETE FROM exercise_types WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete exercise type: %w", err)
	}
	return nil
}
