// ABOUTME: MealType catalog and food log CRUD.
// ABOUTME: Reads join meal names; import resolves meal types by name.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

// CreateMealType inserts a meal type. A duplicate name returns
// ErrAlreadyExists.
func (d *DB) CreateMealType(mt *models.MealType) error {
	res, err := d.db.Exec("INSERT INTO meal_types (name) VALUES (?)", mt.Name)
	if isUniqueViolation(err) {
		return fmt.Errorf("meal type %q: %w", mt.Name, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("create meal type: %w", err)
	}
	mt.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create meal type: %w", err)
	}
	return nil
}

// GetMealType retrieves a meal type by id.
func (d *DB) GetMealType(id int64) (*models.MealType, error) {
	var mt models.MealType
	err := d.db.QueryRow("SELECT id, name FROM meal_types WHERE id = ?", id).
		Scan(&mt.ID, &mt.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("meal type %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get meal type: %w", err)
	}
	return &mt, nil
}

// ListMealTypes returns all meal types ordered by name.
func (d *DB) ListMealTypes() ([]*models.MealType, error) {
	rows, err := d.db.Query("SELECT id, name FROM meal_types ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list meal types: %w", err)
	}
	defer rows.Close()

	var types []*models.MealType
	for rows.Next() {
		var mt models.MealType
		if err := rows.Scan(&mt.ID, &mt.Name); err != nil {
			return nil, fmt.Errorf("scan meal type: %w", err)
		}
		types = append(types, &mt)
	}
	return types, rows.Err()
}

// UpdateMealType renames a meal type. Missing ids no-op; a duplicate name
// returns ErrAlreadyExists.
func (d *DB) UpdateMealType(mt *models.MealType) error {
	_, err := d.db.Exec("UPDATE meal_types SET name = ? WHERE id = ?", mt.Name, mt.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("meal type %q: %w", mt.Name, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("update meal type: %w", err)
	}
	return nil
}

// DeleteMealType removes a meal type. Missing ids no-op.
func (d *DB) DeleteMealType(id int64) error {
	if _, err := d.db.Exec("DELETE FROM meal_types WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete meal type: %w", err)
	}
	return nil
}

const foodColumns = `f.id, f.date, f.time, f.meal_type_id, mt.name,
	f.food_item, f.quantity, f.calories, f.notes`

// CreateFoodEntry inserts a food log row and fills in its id.
func (d *DB) CreateFoodEntry(e *models.FoodEntry) error {
	res, err := d.db.Exec(`
		INSERT INTO food_log (date, time, meal_type_id, food_item, quantity, calories, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Date, e.Time, e.MealTypeID, e.FoodItem, e.Quantity, e.Calories, e.Notes,
	)
	if err != nil {
		return fmt.Errorf("create food entry: %w", err)
	}
	e.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create food entry: %w", err)
	}
	return nil
}

// GetFoodEntry retrieves a food log row by id with its meal name joined.
func (d *DB) GetFoodEntry(id int64) (*models.FoodEntry, error) {
	row := d.db.QueryRow(`
		SELECT `+foodColumns+`
		FROM food_log f
		JOIN meal_types mt ON f.meal_type_id = mt.id
		WHERE f.id = ?`, id)
	e, err := scanFood(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("food entry %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get food entry: %w", err)
	}
	return e, nil
}

// ListFoodEntries returns all food log rows, newest first.
func (d *DB) ListFoodEntries() ([]*models.FoodEntry, error) {
	rows, err := d.db.Query(`
		SELECT ` + foodColumns + `
		FROM food_log f
		JOIN meal_types mt ON f.meal_type_id = mt.id
		ORDER BY f.date DESC, f.time DESC`)
	if err != nil {
		return nil, fmt.Errorf("list food entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.FoodEntry
	for rows.Next() {
		e, err := scanFood(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan food entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// UpdateFoodEntry replaces a food log row in place. Missing ids no-op.
func (d *DB) UpdateFoodEntry(e *models.FoodEntry) error {
	_, err := d.db.Exec(`
		UPDATE food_log
		SET date = ?, time = ?, meal_type_id = ?, food_item = ?, quantity = ?,
			calories = ?, notes = ?
		WHERE id = ?`,
		e.Date, e.Time, e.MealTypeID, e.FoodItem, e.Quantity, e.Calories,
		e.Notes, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update food entry: %w", err)
	}
	return nil
}

// DeleteFoodEntry removes a food log row. Missing ids no-op.
func (d *DB) DeleteFoodEntry(id int64) error {
	if _, err := d.db.Exec("DELETE FROM food_log WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete food entry: %w", err)
	}
	return nil
}

// resolveMealType returns the id for a named meal type, creating the
// catalog row when absent. Used by import inside its transaction.
func resolveMealType(tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM meal_types WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		res, err := tx.Exec("INSERT INTO meal_types (name) VALUES (?)", name)
		if err != nil {
			return 0, fmt.Errorf("create meal type %q: %w", name, err)
		}
		return res.LastInsertId()
	}
	if err != nil {
		return 0, fmt.Errorf("resolve meal type %q: %w", name, err)
	}
	return id, nil
}

func scanFood(scan func(dest ...any) error) (*models.FoodEntry, error) {
	var e models.FoodEntry
	err := scan(&e.ID, &e.Date, &e.Time, &e.MealTypeID, &e.MealName,
		&e.FoodItem, &e.Quantity, &e.Calories, &e.Notes)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
