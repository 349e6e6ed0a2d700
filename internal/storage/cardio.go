// ABOUTME: Cardio workout CRUD and the weekly dashboard aggregation.
// ABOUTME: Pace is derived on create/update per the activity classification.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

const cardioColumns = `cw.id, cw.date, cw.time, cw.activity_type_id, at.name,
	cw.distance_miles, cw.duration_minutes, cw.pace_min_per_mile,
	cw.avg_heart_rate, cw.calories_burned, cw.weight_lbs, cw.notes`

// CreateCardioWorkout inserts a workout, deriving pace from distance and
// duration when the activity type is a running one. Non-running activities
// always store a NULL pace, whatever the caller set.
func (d *DB) CreateCardioWorkout(w *models.CardioWorkout) error {
	if err := d.applyPace(w); err != nil {
		return err
	}
	res, err := d.db.Exec(`
		INSERT INTO cardio_workouts (date, time, activity_type_id, distance_miles,
			duration_minutes, pace_min_per_mile, avg_heart_rate, calories_burned,
			weight_lbs, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.Date, w.Time, w.ActivityTypeID, w.DistanceMiles, w.DurationMinutes,
		w.PaceMinPerMile, w.AvgHeartRate, w.CaloriesBurned, w.WeightLbs, w.Notes,
	)
	if err != nil {
		return fmt.Errorf("create cardio workout: %w", err)
	}
	w.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create cardio workout: %w", err)
	}
	return nil
}

// GetCardioWorkout retrieves a workout by id with its activity name joined.
func (d *DB) GetCardioWorkout(id int64) (*models.CardioWorkout, error) {
	row := d.db.QueryRow(`
		SELECT `+cardioColumns+`
		FROM cardio_workouts cw
		JOIN activity_types at ON cw.activity_type_id = at.id
		WHERE cw.id = ?`, id)
	w, err := scanCardio(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("cardio workout %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get cardio workout: %w", err)
	}
	return w, nil
}

// ListCardioWorkouts returns all workouts, newest first, with activity
// names joined so callers never see a bare foreign key.
func (d *DB) ListCardioWorkouts() ([]*models.CardioWorkout, error) {
	rows, err := d.db.Query(`
		SELECT ` + cardioColumns + `
		FROM cardio_workouts cw
		JOIN activity_types at ON cw.activity_type_id = at.id
		ORDER BY cw.date DESC, cw.time DESC`)
	if err != nil {
		return nil, fmt.Errorf("list cardio workouts: %w", err)
	}
	defer rows.Close()

	var workouts []*models.CardioWorkout
	for rows.Next() {
		w, err := scanCardio(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan cardio workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// UpdateCardioWorkout replaces a workout in place, re-deriving pace.
// Updating a missing id is a silent no-op.
func (d *DB) UpdateCardioWorkout(w *models.CardioWorkout) error {
	if err := d.applyPace(w); err != nil {
		return err
	}
	_, err := d.db.Exec(`
		UPDATE cardio_workouts
		SET date = ?, time = ?, activity_type_id = ?, distance_miles = ?,
			duration_minutes = ?, pace_min_per_mile = ?, avg_heart_rate = ?,
			calories_burned = ?, weight_lbs = ?, notes = ?
		WHERE id = ?`,
		w.Date, w.Time, w.ActivityTypeID, w.DistanceMiles, w.DurationMinutes,
		w.PaceMinPerMile, w.AvgHeartRate, w.CaloriesBurned, w.WeightLbs,
		w.Notes, w.ID,
	)
	if err != nil {
		return fmt.Errorf("update cardio workout: %w", err)
	}
	return nil
}

// DeleteCardioWorkout removes a workout. Missing ids no-op.
func (d *DB) DeleteCardioWorkout(id int64) error {
	if _, err := d.db.Exec("DELETE FROM cardio_workouts WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete cardio workout: %w", err)
	}
	return nil
}

// CardioDashboard groups workouts by week-of-year. The pace average
// excludes zero and NULL distance rows via null-safe division; the
// distance and calorie sums keep them. Weeks with no rows don't appear.
func (d *DB) CardioDashboard() ([]*models.CardioWeek, error) {
	rows, err := d.db.Query(`
		SELECT
			strftime('%Y-%W', date) AS week,
			SUM(distance_miles),
			SUM(calories_burned),
			AVG(duration_minutes / NULLIF(distance_miles, 0))
		FROM cardio_workouts
		GROUP BY week
		ORDER BY week`)
	if err != nil {
		return nil, fmt.Errorf("cardio dashboard: %w", err)
	}
	defer rows.Close()

	var weeks []*models.CardioWeek
	for rows.Next() {
		var cw models.CardioWeek
		var distance sql.NullFloat64
		var calories sql.NullInt64
		var pace sql.NullFloat64
		if err := rows.Scan(&cw.Week, &distance, &calories, &pace); err != nil {
			return nil, fmt.Errorf("scan cardio week: %w", err)
		}
		cw.TotalDistance = distance.Float64
		cw.TotalCalories = int(calories.Int64)
		if pace.Valid {
			p := pace.Float64
			cw.AvgPaceMinutes = &p
		}
		weeks = append(weeks, &cw)
	}
	return weeks, rows.Err()
}

// applyPace enforces the pace invariant against the workout's activity type.
func (d *DB) applyPace(w *models.CardioWorkout) error {
	at, err := d.GetActivityType(w.ActivityTypeID)
	if err != nil {
		return fmt.Errorf("pace activity lookup: %w", err)
	}
	if models.IsRunningActivity(at.Name) {
		w.PaceMinPerMile = models.Pace(w.DistanceMiles, w.DurationMinutes)
	} else {
		w.PaceMinPerMile = nil
	}
	return nil
}

func scanCardio(scan func(dest ...any) error) (*models.CardioWorkout, error) {
	var w models.CardioWorkout
	err := scan(&w.ID, &w.Date, &w.Time, &w.ActivityTypeID, &w.ActivityName,
		&w.DistanceMiles, &w.DurationMinutes, &w.PaceMinPerMile,
		&w.AvgHeartRate, &w.CaloriesBurned, &w.WeightLbs, &w.Notes)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
