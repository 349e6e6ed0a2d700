// ABOUTME: CSV/JSON import for all four domains, one transaction per call.
// ABOUTME: Imports are all-or-nothing: any bad row rolls the whole batch back.
package storage

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harperreed/fittrack/internal/models"
)

// ImportCardioCSV reads cardio rows (the ExportCardioCSV layout), resolving
// or creating activity types by name. The pace column is stored verbatim,
// never recomputed. Returns the number of rows imported.
func (d *DB) ImportCardioCSV(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read cardio csv header: %w", err)
	}
	cols := indexColumns(header)

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("import cardio: %w", err)
	}
	defer tx.Rollback()

	count := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read cardio csv row: %w", err)
		}
		field := fieldFunc(cols, record)

		activityID, err := resolveActivityType(tx, field("activity_type"))
		if err != nil {
			return 0, err
		}

		distance, err := parseFloatPtr(field("distance_miles"))
		if err != nil {
			return 0, fmt.Errorf("cardio row %d distance: %w", count+1, err)
		}
		duration, err := parseFloatPtr(field("duration_minutes"))
		if err != nil {
			return 0, fmt.Errorf("cardio row %d duration: %w", count+1, err)
		}
		heartRate, err := parseIntPtr(field("avg_heart_rate"))
		if err != nil {
			return 0, fmt.Errorf("cardio row %d heart rate: %w", count+1, err)
		}
		calories, err := parseIntPtr(field("calories_burned"))
		if err != nil {
			return 0, fmt.Errorf("cardio row %d calories: %w", count+1, err)
		}
		weight, err := parseFloatPtr(field("weight_lbs"))
		if err != nil {
			return 0, fmt.Errorf("cardio row %d weight: %w", count+1, err)
		}

		_, err = tx.Exec(`
			INSERT INTO cardio_workouts (date, time, activity_type_id, distance_miles,
				duration_minutes, pace_min_per_mile, avg_heart_rate, calories_burned,
				weight_lbs, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			field("date"), strPtrOrNil(field("time")), activityID, distance, duration,
			strPtrOrNil(field("pace_min_per_mile")), heartRate, calories, weight,
			strPtrOrNil(field("notes")),
		)
		if err != nil {
			return 0, fmt.Errorf("insert cardio row %d: %w", count+1, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("import cardio: %w", err)
	}
	return count, nil
}

// ImportFoodCSV reads food log rows (the ExportFoodCSV layout), resolving
// or creating meal types by name. A blank meal type becomes "Unknown".
func (d *DB) ImportFoodCSV(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read food csv header: %w", err)
	}
	cols := indexColumns(header)

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("import food: %w", err)
	}
	defer tx.Rollback()

	count := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read food csv row: %w", err)
		}
		field := fieldFunc(cols, record)

		mealName := field("meal_type")
		if mealName == "" {
			mealName = "Unknown"
		}
		mealID, err := resolveMealType(tx, mealName)
		if err != nil {
			return 0, err
		}

		calories, err := parseIntPtr(field("calories"))
		if err != nil {
			return 0, fmt.Errorf("food row %d calories: %w", count+1, err)
		}

		_, err = tx.Exec(`
			INSERT INTO food_log (date, time, meal_type_id, food_item, quantity, calories, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			field("date"), strPtrOrNil(field("time")), mealID, field("food_item"),
			strPtrOrNil(field("quantity")), calories, strPtrOrNil(field("notes")),
		)
		if err != nil {
			return 0, fmt.Errorf("insert food row %d: %w", count+1, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("import food: %w", err)
	}
	return count, nil
}

// ImportHealthCSV reads positional six-column rows
// (date, time, systolic, diastolic, bpm, weight). A leading header row is
// skipped when its first cell mentions "date". Dates like MM/DD/YYYY are
// normalized and BMI is re-derived from weight with the imperial formula.
func (d *DB) ImportHealthCSV(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("import health: %w", err)
	}
	defer tx.Rollback()

	count := 0
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read health csv row: %w", err)
		}
		if first {
			first = false
			if len(record) > 0 && strings.Contains(strings.ToLower(record[0]), "date") {
				continue
			}
		}
		if len(record) < 6 {
			continue
		}

		date := models.NormalizeDate(record[0])
		timeStr := models.NormalizeTime(record[1])

		systolic, err := parseIntPtr(strings.TrimSpace(record[2]))
		if err != nil {
			return 0, fmt.Errorf("health row %d systolic: %w", count+1, err)
		}
		diastolic, err := parseIntPtr(strings.TrimSpace(record[3]))
		if err != nil {
			return 0, fmt.Errorf("health row %d diastolic: %w", count+1, err)
		}
		bpm, err := parseIntPtr(strings.TrimSpace(record[4]))
		if err != nil {
			return 0, fmt.Errorf("health row %d bpm: %w", count+1, err)
		}
		weight, err := parseFloatPtr(strings.TrimSpace(record[5]))
		if err != nil {
			return 0, fmt.Errorf("health row %d weight: %w", count+1, err)
		}

		var bmi *float64
		if weight != nil {
			b := models.BMIImperial(*weight)
			bmi = &b
		}

		_, err = tx.Exec(`
			INSERT INTO health_log (date, time, systolic, diastolic, bpm, weight, bmi)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			date, strPtrOrNil(timeStr), systolic, diastolic, bpm, weight, bmi,
		)
		if err != nil {
			return 0, fmt.Errorf("insert health row %d: %w", count+1, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("import health: %w", err)
	}
	return count, nil
}

// ImportStrengthCSV reads flat set rows (the ExportStrengthCSV layout).
// Workouts are deduplicated by (date, body_part, notes) and exercises by
// (workout_id, exercise_name), so re-importing an export attaches sets to
// the existing tree instead of duplicating it.
func (d *DB) ImportStrengthCSV(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read strength csv header: %w", err)
	}
	cols := indexColumns(header)

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("import strength: %w", err)
	}
	defer tx.Rollback()

	count := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read strength csv row: %w", err)
		}
		field := fieldFunc(cols, record)

		setNumber, err := strconv.Atoi(field("set_number"))
		if err != nil {
			return 0, fmt.Errorf("strength row %d set number: %w", count+1, err)
		}
		reps, err := parseIntPtr(field("reps"))
		if err != nil {
			return 0, fmt.Errorf("strength row %d reps: %w", count+1, err)
		}
		weight, err := parseFloatPtr(field("weight"))
		if err != nil {
			return 0, fmt.Errorf("strength row %d weight: %w", count+1, err)
		}
		rest, err := parseIntPtr(field("rest_seconds"))
		if err != nil {
			return 0, fmt.Errorf("strength row %d rest: %w", count+1, err)
		}

		if err := importStrengthSetTx(tx, field("date"), field("body_part"),
			field("notes"), field("exercise_name"), setNumber, reps, weight, rest); err != nil {
			return 0, fmt.Errorf("strength row %d: %w", count+1, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("import strength: %w", err)
	}
	return count, nil
}

// ImportStrengthJSON reads the flat JSON array produced by
// ExportStrengthJSON, with the same dedupe behavior as the CSV path.
func (d *DB) ImportStrengthJSON(r io.Reader) (int, error) {
	var rowsData []StrengthExportRow
	if err := json.NewDecoder(r).Decode(&rowsData); err != nil {
		return 0, fmt.Errorf("decode strength json: %w", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("import strength: %w", err)
	}
	defer tx.Rollback()

	for i, row := range rowsData {
		if err := importStrengthSetTx(tx, row.Date, csvString(row.BodyPart),
			csvString(row.Notes), row.ExerciseName, row.SetNumber,
			row.Reps, row.Weight, row.RestSeconds); err != nil {
			return 0, fmt.Errorf("strength row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("import strength: %w", err)
	}
	return len(rowsData), nil
}

// importStrengthSetTx inserts one set, reusing the matching workout and
// exercise rows when they already exist.
func importStrengthSetTx(tx *sql.Tx, date, bodyPart, notes, exerciseName string,
	setNumber int, reps *int, weight *float64, rest *int) error {

	bp := strPtrOrNil(bodyPart)
	nt := strPtrOrNil(notes)

	var workoutID int64
	err := tx.QueryRow(
		"SELECT id FROM workouts WHERE date = ? AND body_part IS ? AND notes IS ?",
		date, bp, nt,
	).Scan(&workoutID)
	if errors.Is(err, sql.ErrNoRows) {
		res, err := tx.Exec(
			"INSERT INTO workouts (date, body_part, notes) VALUES (?, ?, ?)",
			date, bp, nt,
		)
		if err != nil {
			return fmt.Errorf("create workout: %w", err)
		}
		if workoutID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("create workout: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("resolve workout: %w", err)
	}

	var exerciseID int64
	err = tx.QueryRow(
		"SELECT id FROM exercises WHERE workout_id = ? AND exercise_name = ?",
		workoutID, exerciseName,
	).Scan(&exerciseID)
	if errors.Is(err, sql.ErrNoRows) {
		res, err := tx.Exec(
			"INSERT INTO exercises (workout_id, exercise_name) VALUES (?, ?)",
			workoutID, exerciseName,
		)
		if err != nil {
			return fmt.Errorf("create exercise: %w", err)
		}
		if exerciseID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("create exercise: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("resolve exercise: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO sets (exercise_id, set_number, reps, weight, rest_seconds)
		VALUES (?, ?, ?, ?, ?)`,
		exerciseID, setNumber, reps, weight, rest,
	)
	if err != nil {
		return fmt.Errorf("create set: %w", err)
	}
	return nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

// fieldFunc returns a lookup over one CSV record by column name, empty
// string for absent columns.
func fieldFunc(cols map[string]int, record []string) func(string) string {
	return func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseFloatPtr(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseIntPtr(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
