// ABOUTME: Flat-row export shaping for all four domains.
// ABOUTME: CSV headers are a round-trip contract and must not change.
package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// CardioExportRow is one flat cardio row with the activity name joined in
// place of the foreign key.
type CardioExportRow struct {
	ID              int64    `json:"id" yaml:"id"`
	Date            string   `json:"date" yaml:"date"`
	Time            *string  `json:"time" yaml:"time"`
	ActivityType    string   `json:"activity_type" yaml:"activity_type"`
	DistanceMiles   *float64 `json:"distance_miles" yaml:"distance_miles"`
	DurationMinutes *float64 `json:"duration_minutes" yaml:"duration_minutes"`
	PaceMinPerMile  *string  `json:"pace_min_per_mile" yaml:"pace_min_per_mile"`
	AvgHeartRate    *int     `json:"avg_heart_rate" yaml:"avg_heart_rate"`
	CaloriesBurned  *int     `json:"calories_burned" yaml:"calories_burned"`
	WeightLbs       *float64 `json:"weight_lbs" yaml:"weight_lbs"`
	Notes           *string  `json:"notes" yaml:"notes"`
}

var cardioCSVHeader = []string{
	"id", "date", "time", "activity_type", "distance_miles", "duration_minutes",
	"pace_min_per_mile", "avg_heart_rate", "calories_burned", "weight_lbs", "notes",
}

// CardioRows returns every cardio workout as a flat export row, newest first.
func (d *DB) CardioRows() ([]CardioExportRow, error) {
	rows, err := d.db.Query(`
		SELECT cw.id, cw.date, cw.time, at.name, cw.distance_miles,
			cw.duration_minutes, cw.pace_min_per_mile, cw.avg_heart_rate,
			cw.calories_burned, cw.weight_lbs, cw.notes
		FROM cardio_workouts cw
		JOIN activity_types at ON cw.activity_type_id = at.id
		ORDER BY cw.date DESC`)
	if err != nil {
		return nil, fmt.Errorf("cardio export rows: %w", err)
	}
	defer rows.Close()

	out := []CardioExportRow{}
	for rows.Next() {
		var r CardioExportRow
		if err := rows.Scan(&r.ID, &r.Date, &r.Time, &r.ActivityType,
			&r.DistanceMiles, &r.DurationMinutes, &r.PaceMinPerMile,
			&r.AvgHeartRate, &r.CaloriesBurned, &r.WeightLbs, &r.Notes); err != nil {
			return nil, fmt.Errorf("scan cardio export row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ExportCardioCSV renders all cardio workouts as CSV.
func (d *DB) ExportCardioCSV() ([]byte, error) {
	rowsData, err := d.CardioRows()
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0, len(rowsData))
	for _, r := range rowsData {
		records = append(records, []string{
			strconv.FormatInt(r.ID, 10), r.Date, csvString(r.Time), r.ActivityType,
			csvFloat(r.DistanceMiles), csvFloat(r.DurationMinutes),
			csvString(r.PaceMinPerMile), csvInt(r.AvgHeartRate),
			csvInt(r.CaloriesBurned), csvFloat(r.WeightLbs), csvString(r.Notes),
		})
	}
	return writeCSV(cardioCSVHeader, records)
}

// ExportCardioJSON renders all cardio workouts as a JSON array.
func (d *DB) ExportCardioJSON() ([]byte, error) {
	rowsData, err := d.CardioRows()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rowsData)
}

// FoodExportRow is one flat food log row with the meal name joined.
type FoodExportRow struct {
	ID       int64   `json:"id" yaml:"id"`
	Date     string  `json:"date" yaml:"date"`
	Time     *string `json:"time" yaml:"time"`
	MealType string  `json:"meal_type" yaml:"meal_type"`
	FoodItem string  `json:"food_item" yaml:"food_item"`
	Quantity *string `json:"quantity" yaml:"quantity"`
	Calories *int    `json:"calories" yaml:"calories"`
	Notes    *string `json:"notes" yaml:"notes"`
}

var foodCSVHeader = []string{
	"id", "date", "time", "meal_type", "food_item", "quantity", "calories", "notes",
}

// FoodRows returns every food log entry as a flat export row, newest first.
func (d *DB) FoodRows() ([]FoodExportRow, error) {
	rows, err := d.db.Query(`
		SELECT fl.id, fl.date, fl.time, mt.name, fl.food_item, fl.quantity,
			fl.calories, fl.notes
		FROM food_log fl
		JOIN meal_types mt ON fl.meal_type_id = mt.id
		ORDER BY fl.date DESC, fl.time`)
	if err != nil {
		return nil, fmt.Errorf("food export rows: %w", err)
	}
	defer rows.Close()

	out := []FoodExportRow{}
	for rows.Next() {
		var r FoodExportRow
		if err := rows.Scan(&r.ID, &r.Date, &r.Time, &r.MealType, &r.FoodItem,
			&r.Quantity, &r.Calories, &r.Notes); err != nil {
			return nil, fmt.Errorf("scan food export row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ExportFoodCSV renders the food log as CSV.
func (d *DB) ExportFoodCSV() ([]byte, error) {
	rowsData, err := d.FoodRows()
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0, len(rowsData))
	for _, r := range rowsData {
		records = append(records, []string{
			strconv.FormatInt(r.ID, 10), r.Date, csvString(r.Time), r.MealType,
			r.FoodItem, csvString(r.Quantity), csvInt(r.Calories), csvString(r.Notes),
		})
	}
	return writeCSV(foodCSVHeader, records)
}

// ExportFoodJSON renders the food log as a JSON array.
func (d *DB) ExportFoodJSON() ([]byte, error) {
	rowsData, err := d.FoodRows()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rowsData)
}

// HealthExportRow is one flat health log row. The health export carries no
// id column; its header casing is part of the round-trip contract.
type HealthExportRow struct {
	Date      string   `json:"date" yaml:"date"`
	Time      *string  `json:"time" yaml:"time"`
	Systolic  *int     `json:"systolic" yaml:"systolic"`
	Diastolic *int     `json:"diastolic" yaml:"diastolic"`
	BPM       *int     `json:"bpm" yaml:"bpm"`
	Weight    *float64 `json:"weight" yaml:"weight"`
	BMI       *float64 `json:"bmi" yaml:"bmi"`
}

var healthCSVHeader = []string{
	"Date", "Time", "Systolic", "Diastolic", "BPM", "Weight (lbs)", "BMI",
}

// HealthRows returns every health record as a flat export row, date ascending.
func (d *DB) HealthRows() ([]HealthExportRow, error) {
	rows, err := d.db.Query(`
		SELECT date, time, systolic, diastolic, bpm, weight, bmi
		FROM health_log
		ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("health export rows: %w", err)
	}
	defer rows.Close()

	out := []HealthExportRow{}
	for rows.Next() {
		var r HealthExportRow
		if err := rows.Scan(&r.Date, &r.Time, &r.Systolic, &r.Diastolic,
			&r.BPM, &r.Weight, &r.BMI); err != nil {
			return nil, fmt.Errorf("scan health export row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ExportHealthCSV renders the health log as CSV.
func (d *DB) ExportHealthCSV() ([]byte, error) {
	rowsData, err := d.HealthRows()
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0, len(rowsData))
	for _, r := range rowsData {
		records = append(records, []string{
			r.Date, csvString(r.Time), csvInt(r.Systolic), csvInt(r.Diastolic),
			csvInt(r.BPM), csvFloat(r.Weight), csvFloat(r.BMI),
		})
	}
	return writeCSV(healthCSVHeader, records)
}

// ExportHealthJSON renders the health log as a JSON array.
func (d *DB) ExportHealthJSON() ([]byte, error) {
	rowsData, err := d.HealthRows()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rowsData)
}

// StrengthExportRow is one flat set row: workout and exercise context
// denormalized alongside the set columns.
type StrengthExportRow struct {
	WorkoutID    int64    `json:"workout_id" yaml:"workout_id"`
	Date         string   `json:"date" yaml:"date"`
	BodyPart     *string  `json:"body_part" yaml:"body_part"`
	Notes        *string  `json:"notes" yaml:"notes"`
	ExerciseName string   `json:"exercise_name" yaml:"exercise_name"`
	SetNumber    int      `json:"set_number" yaml:"set_number"`
	Reps         *int     `json:"reps" yaml:"reps"`
	Weight       *float64 `json:"weight" yaml:"weight"`
	RestSeconds  *int     `json:"rest_seconds" yaml:"rest_seconds"`
}

var strengthCSVHeader = []string{
	"workout_id", "date", "body_part", "notes", "exercise_name",
	"set_number", "reps", "weight", "rest_seconds",
}

// StrengthRows returns one flat row per set across all strength workouts.
func (d *DB) StrengthRows() ([]StrengthExportRow, error) {
	rows, err := d.db.Query(`
		SELECT w.id, w.date, w.body_part, w.notes, e.exercise_name,
			s.set_number, s.reps, s.weight, s.rest_seconds
		FROM workouts w
		JOIN exercises e ON w.id = e.workout_id
		JOIN sets s ON e.id = s.exercise_id
		ORDER BY w.date, w.id, e.id, s.set_number`)
	if err != nil {
		return nil, fmt.Errorf("strength export rows: %w", err)
	}
	defer rows.Close()

	out := []StrengthExportRow{}
	for rows.Next() {
		var r StrengthExportRow
		if err := rows.Scan(&r.WorkoutID, &r.Date, &r.BodyPart, &r.Notes,
			&r.ExerciseName, &r.SetNumber, &r.Reps, &r.Weight, &r.RestSeconds); err != nil {
			return nil, fmt.Errorf("scan strength export row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ExportStrengthCSV renders all strength data as CSV.
func (d *DB) ExportStrengthCSV() ([]byte, error) {
	rowsData, err := d.StrengthRows()
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0, len(rowsData))
	for _, r := range rowsData {
		records = append(records, []string{
			strconv.FormatInt(r.WorkoutID, 10), r.Date, csvString(r.BodyPart),
			csvString(r.Notes), r.ExerciseName, strconv.Itoa(r.SetNumber),
			csvInt(r.Reps), csvFloat(r.Weight), csvInt(r.RestSeconds),
		})
	}
	return writeCSV(strengthCSVHeader, records)
}

// ExportStrengthJSON renders all strength data as a JSON array.
func (d *DB) ExportStrengthJSON() ([]byte, error) {
	rowsData, err := d.StrengthRows()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rowsData)
}

// ExportStrengthYAML renders all strength data as YAML.
func (d *DB) ExportStrengthYAML() ([]byte, error) {
	rowsData, err := d.StrengthRows()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(rowsData)
}

func writeCSV(header []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func csvString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func csvFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func csvInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}
