// ABOUTME: ActivityType catalog CRUD for the cardio domain.
// ABOUTME: Activity names drive the pace classification rule.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

// CreateActivityType inserts a new activity type and fills in its id.
func (d *DB) CreateActivityType(at *models.ActivityType) error {
	res, err := d.db.Exec(
		"INSERT INTO activity_types (name, description) VALUES (?, ?)",
		at.Name, at.Description,
	)
	if err != nil {
		return fmt.Errorf("create activity type: %w", err)
	}
	at.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create activity type: %w", err)
	}
	return nil
}

// GetActivityType retrieves an activity type by id.
func (d *DB) GetActivityType(id int64) (*models.ActivityType, error) {
	var at models.ActivityType
	err := d.db.QueryRow(
		"SELECT id, name, description FROM activity_types WHERE id = ?", id,
	).Scan(&at.ID, &at.Name, &at.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("activity type %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get activity type: %w", err)
	}
	return &at, nil
}

// ListActivityTypes returns all activity types ordered by name.
func (d *DB) ListActivityTypes() ([]*models.ActivityType, error) {
	rows, err := d.db.Query("SELECT id, name, description FROM activity_types ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list activity types: %w", err)
	}
	defer rows.Close()

	var types []*models.ActivityType
	for rows.Next() {
		var at models.ActivityType
		if err := rows.Scan(&at.ID, &at.Name, &at.Description); err != nil {
			return nil, fmt.Errorf("scan activity type: %w", err)
		}
		types = append(types, &at)
	}
	return types, rows.Err()
}

// UpdateActivityType replaces an activity type in place. Updating a
// missing id is a silent no-op.
func (d *DB) UpdateActivityType(at *models.ActivityType) error {
	_, err := d.db.Exec(
		"UPDATE activity_types SET name = ?, description = ? WHERE id = ?",
		at.Name, at.Description, at.ID,
	)
	if err != nil {
		return fmt.Errorf("update activity type: %w", err)
	}
	return nil
}

// DeleteActivityType removes an activity type. Missing ids no-op.
func (d *DB) DeleteActivityType(id int64) error {
	if _, err := d.db.Exec("DELETE FROM activity_types WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete activity type: %w", err)
	}
	return nil
}

// resolveActivityType returns the id for a named activity type, creating
// the catalog row when absent. Used by import inside its transaction.
func resolveActivityType(tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM activity_types WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		res, err := tx.Exec("INSERT INTO activity_types (name) VALUES (?)", name)
		if err != nil {
			return 0, fmt.Errorf("create activity type %q: %w", name, err)
		}
		return res.LastInsertId()
	}
	if err != nil {
		return 0, fmt.Errorf("resolve activity type %q: %w", name, err)
	}
	return id, nil
}
