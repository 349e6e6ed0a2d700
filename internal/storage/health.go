// ABOUTME: Health log CRUD and the date-ordered dashboard series.
// ABOUTME: BMI arrives pre-derived on the record; storage never computes it.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fittrack/internal/models"
)

const healthColumns = `id, date, time, systolic, diastolic, bpm, weight, bmi`

// CreateHealthRecord inserts a health log row and fills in its id.
func (d *DB) CreateHealthRecord(r *models.HealthRecord) error {
	res, err := d.db.Exec(`
		INSERT INTO health_log (date, time, systolic, diastolic, bpm, weight, bmi)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Date, r.Time, r.Systolic, r.Diastolic, r.BPM, r.Weight, r.BMI,
	)
	if err != nil {
		return fmt.Errorf("create health record: %w", err)
	}
	r.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create health record: %w", err)
	}
	return nil
}

// GetHealthRecord retrieves a health log row by id.
func (d *DB) GetHealthRecord(id int64) (*models.HealthRecord, error) {
	row := d.db.QueryRow("SELECT "+healthColumns+" FROM health_log WHERE id = ?", id)
	r, err := scanHealth(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("health record %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get health record: %w", err)
	}
	return r, nil
}

// ListHealthRecords returns all health log rows, newest first.
func (d *DB) ListHealthRecords() ([]*models.HealthRecord, error) {
	rows, err := d.db.Query("SELECT " + healthColumns + " FROM health_log ORDER BY date DESC, time DESC")
	if err != nil {
		return nil, fmt.Errorf("list health records: %w", err)
	}
	defer rows.Close()

	var records []*models.HealthRecord
	for rows.Next() {
		r, err := scanHealth(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan health record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// UpdateHealthRecord replaces a health log row in place. Missing ids no-op.
func (d *DB) UpdateHealthRecord(r *models.HealthRecord) error {
	_, err := d.db.Exec(`
		UPDATE health_log
		SET date = ?, time = ?, systolic = ?, diastolic = ?, bpm = ?, weight = ?, bmi = ?
		WHERE id = ?`,
		r.Date, r.Time, r.Systolic, r.Diastolic, r.BPM, r.Weight, r.BMI, r.ID,
	)
	if err != nil {
		return fmt.Errorf("update health record: %w", err)
	}
	return nil
}

// DeleteHealthRecord removes a health log row. Missing ids no-op.
func (d *DB) DeleteHealthRecord(id int64) error {
	if _, err := d.db.Exec("DELETE FROM health_log WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete health record: %w", err)
	}
	return nil
}

// HealthDashboard returns index-aligned series for every record, date
// ascending, for the vitals charts.
func (d *DB) HealthDashboard() (*models.HealthSeries, error) {
	rows, err := d.db.Query(`
		SELECT date, systolic, diastolic, bpm, weight, bmi
		FROM health_log
		ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("health dashboard: %w", err)
	}
	defer rows.Close()

	series := &models.HealthSeries{}
	for rows.Next() {
		var date string
		var systolic, diastolic, bpm *int
		var weight, bmi *float64
		if err := rows.Scan(&date, &systolic, &diastolic, &bpm, &weight, &bmi); err != nil {
			return nil, fmt.Errorf("scan health series: %w", err)
		}
		series.Dates = append(series.Dates, date)
		series.Systolic = append(series.Systolic, systolic)
		series.Diastolic = append(series.Diastolic, diastolic)
		series.BPM = append(series.BPM, bpm)
		series.Weight = append(series.Weight, weight)
		series.BMI = append(series.BMI, bmi)
	}
	return series, rows.Err()
}

func scanHealth(scan func(dest ...any) error) (*models.HealthRecord, error) {
	var r models.HealthRecord
	err := scan(&r.ID, &r.Date, &r.Time, &r.Systolic, &r.Diastolic, &r.BPM,
		&r.Weight, &r.BMI)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
