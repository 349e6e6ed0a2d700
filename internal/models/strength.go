// ABOUTME: Strength training models: Workout owns Exercises, Exercise owns Sets.
// ABOUTME: Includes the nested form payload and the per-exercise chart series.
package models

// Workout is a strength session. Exercises is populated on full reads and
// consumed whole on create/update (full-record replace, no partial patch).
type Workout struct {
	ID        int64      `json:"id"`
	Date      string     `json:"date"`
	Time      *string    `json:"time"`
	BodyPart  *string    `json:"body_part"`
	Notes     *string    `json:"notes"`
	Exercises []Exercise `json:"exercises,omitempty"`
}

// NewWorkout creates a strength workout for the given date.
func NewWorkout(date string) *Workout {
	return &Workout{Date: date}
}

// Exercise is one movement within a workout. ExerciseName is denormalized
// free text, deliberately decoupled from the ExerciseType catalog.
type Exercise struct {
	ID           int64  `json:"id"`
	WorkoutID    int64  `json:"workout_id"`
	ExerciseName string `json:"exercise_name"`
	Sets         []Set  `json:"sets,omitempty"`
}

// Set is a single set of an exercise. SetNumber is caller-supplied
// ordering, not auto-sequenced.
type Set struct {
	ID          int64    `json:"id"`
	ExerciseID  int64    `json:"exercise_id"`
	SetNumber   int      `json:"set_number"`
	Reps        *int     `json:"reps"`
	Weight      *float64 `json:"weight"`
	RestSeconds *int     `json:"rest_seconds"`
}

// WorkoutPayload is the nested exercises+sets blob the strength form posts
// as a JSON string in the "payload" field.
type WorkoutPayload struct {
	Exercises []PayloadExercise `json:"exercises"`
}

// PayloadExercise is one exercise within a WorkoutPayload.
type PayloadExercise struct {
	ExerciseName string       `json:"exercise_name"`
	Sets         []PayloadSet `json:"sets"`
}

// PayloadSet is one set within a PayloadExercise. The form names the rest
// field "rest", not "rest_seconds".
type PayloadSet struct {
	SetNumber   int      `json:"set_number"`
	Reps        *int     `json:"reps"`
	Weight      *float64 `json:"weight"`
	RestSeconds *int     `json:"rest"`
}

// ToExercises converts the payload into Exercise values ready for storage.
func (p *WorkoutPayload) ToExercises() []Exercise {
	exercises := make([]Exercise, 0, len(p.Exercises))
	for _, pe := range p.Exercises {
		ex := Exercise{ExerciseName: pe.ExerciseName}
		for _, ps := range pe.Sets {
			ex.Sets = append(ex.Sets, Set{
				SetNumber:   ps.SetNumber,
				Reps:        ps.Reps,
				Weight:      ps.Weight,
				RestSeconds: ps.RestSeconds,
			})
		}
		exercises = append(exercises, ex)
	}
	return exercises
}

// ExerciseRef is a picker entry for the strength dashboard.
type ExerciseRef struct {
	ID           int64  `json:"id"`
	ExerciseName string `json:"exercise_name"`
}

// StrengthSeries is the per-exercise chart payload: total volume
// (Σ weight×reps) per workout date plus the all-time PR.
type StrengthSeries struct {
	Dates   []string  `json:"dates"`
	Volumes []float64 `json:"volumes"`
	PR      float64   `json:"pr"`
}
