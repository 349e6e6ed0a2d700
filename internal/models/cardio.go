// ABOUTME: CardioWorkout model and pace derivation.
// ABOUTME: Pace applies only to running-like activity types.
package models

import (
	"fmt"
	"math"
	"strings"
)

// CardioWorkout is a single cardio session. Optional columns are pointers;
// nil round-trips as SQL NULL.
type CardioWorkout struct {
	ID              int64    `json:"id"`
	Date            string   `json:"date"`
	Time            *string  `json:"time"`
	ActivityTypeID  int64    `json:"activity_type_id"`
	ActivityName    string   `json:"activity_name,omitempty"`
	DistanceMiles   *float64 `json:"distance_miles"`
	DurationMinutes *float64 `json:"duration_minutes"`
	PaceMinPerMile  *string  `json:"pace_min_per_mile"`
	AvgHeartRate    *int     `json:"avg_heart_rate"`
	CaloriesBurned  *int     `json:"calories_burned"`
	WeightLbs       *float64 `json:"weight_lbs"`
	Notes           *string  `json:"notes"`
}

// NewCardioWorkout creates a workout for the given date and activity type.
func NewCardioWorkout(date string, activityTypeID int64) *CardioWorkout {
	return &CardioWorkout{Date: date, ActivityTypeID: activityTypeID}
}

// IsRunningActivity reports whether pace applies to the named activity.
// This is a classification rule, not a numeric one: only activity names
// containing "run" or "treadmill" (case-insensitive) ever store a pace.
func IsRunningActivity(activityName string) bool {
	name := strings.ToLower(activityName)
	return strings.Contains(name, "run") || strings.Contains(name, "treadmill")
}

// Pace derives a "M:SS" minutes-per-mile string from distance and duration.
// It fails soft: nil unless distance is present and positive and duration is
// present. Seconds are rounded; a :60 result carries into the next minute.
func Pace(distance, duration *float64) *string {
	if distance == nil || duration == nil || *distance <= 0 {
		return nil
	}
	pace := *duration / *distance
	minutes := int(pace)
	seconds := int(math.Round((pace - float64(minutes)) * 60))
	if seconds == 60 {
		minutes++
		seconds = 0
	}
	s := fmt.Sprintf("%d:%02d", minutes, seconds)
	return &s
}

// CardioWeek is one row of the cardio dashboard aggregation, keyed by
// week-of-year ("YYYY-WW").
type CardioWeek struct {
	Week           string   `json:"week"`
	TotalDistance  float64  `json:"total_distance"`
	TotalCalories  int      `json:"total_calories"`
	AvgPaceMinutes *float64 `json:"avg_pace_min_per_mile"`
}
