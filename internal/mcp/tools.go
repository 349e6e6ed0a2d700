// ABOUTME: MCP tool implementations for the fitness tracker.
// ABOUTME: Logging tools for cardio, food, and health plus dashboard queries.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_cardio
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_cardio",
		Description: "Record a cardio workout (run, bike, swim, etc.)",
	}, s.handleLogCardio)

	// log_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Record a food log entry",
	}, s.handleLogFood)

	// log_health
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_health",
		Description: "Record health vitals (blood pressure, heart rate, weight)",
	}, s.handleLogHealth)

	// cardio_dashboard
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "cardio_dashboard",
		Description: "Weekly cardio totals: distance, calories, average pace",
	}, s.handleCardioDashboard)

	// strength_data
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "strength_data",
		Description: "Per-exercise volume history and personal record",
	}, s.handleStrengthData)

	// bmi
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "bmi",
		Description: "Calculate BMI from weight in pounds and height in inches",
	}, s.handleBMI)
}

// Tool input/output types

type logCardioInput struct {
	Date            string  `json:"date,omitempty" jsonschema:"Workout date (YYYY-MM-DD), defaults to today"`
	Time            string  `json:"time,omitempty" jsonschema:"Workout time (HH:MM)"`
	ActivityType    string  `json:"activity_type" jsonschema:"Activity name (Running, Cycling, etc.)"`
	DistanceMiles   float64 `json:"distance_miles,omitempty" jsonschema:"Distance in miles"`
	DurationMinutes float64 `json:"duration_minutes,omitempty" jsonschema:"Duration in minutes"`
	AvgHeartRate    int     `json:"avg_heart_rate,omitempty" jsonschema:"Average heart rate in bpm"`
	CaloriesBurned  int     `json:"calories_burned,omitempty" jsonschema:"Calories burned"`
	Notes           string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type cardioOutput struct {
	ID      int64   `json:"id"`
	Pace    *string `json:"pace,omitempty"`
	Message string  `json:"message"`
}

type logFoodInput struct {
	Date     string `json:"date,omitempty" jsonschema:"Entry date (YYYY-MM-DD), defaults to today"`
	Time     string `json:"time,omitempty" jsonschema:"Entry time (HH:MM)"`
	MealType string `json:"meal_type" jsonschema:"Meal type (Breakfast, Lunch, Dinner, Snack)"`
	FoodItem string `json:"food_item" jsonschema:"What was eaten"`
	Quantity string `json:"quantity,omitempty" jsonschema:"Serving description"`
	Calories int    `json:"calories,omitempty" jsonschema:"Calories"`
	Notes    string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type logHealthInput struct {
	Date      string  `json:"date,omitempty" jsonschema:"Record date (YYYY-MM-DD), defaults to today"`
	Time      string  `json:"time,omitempty" jsonschema:"Record time (HH:MM)"`
	Systolic  int     `json:"systolic,omitempty" jsonschema:"Systolic blood pressure"`
	Diastolic int     `json:"diastolic,omitempty" jsonschema:"Diastolic blood pressure"`
	BPM       int     `json:"bpm,omitempty" jsonschema:"Resting heart rate"`
	WeightLbs float64 `json:"weight_lbs,omitempty" jsonschema:"Weight in pounds"`
}

type healthOutput struct {
	ID      int64    `json:"id"`
	BMI     *float64 `json:"bmi,omitempty"`
	Message string   `json:"message"`
}

type simpleOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type emptyInput struct{}

type strengthDataInput struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"Exercise ID from the strength dashboard picker"`
}

type bmiInput struct {
	WeightLbs    float64 `json:"weight_lbs" jsonschema:"Weight in pounds"`
	HeightInches float64 `json:"height_inches,omitempty" jsonschema:"Height in inches (default 65)"`
}

type bmiOutput struct {
	BMI float64 `json:"bmi"`
}

// Tool handlers

func (s *Server) handleLogCardio(ctx context.Context, req *mcp.CallToolRequest, input logCardioInput) (*mcp.CallToolResult, cardioOutput, error) {
	at, err := s.findOrCreateActivityType(input.ActivityType)
	if err != nil {
		return nil, cardioOutput{}, err
	}

	w := models.NewCardioWorkout(orToday(input.Date), at.ID)
	if input.Time != "" {
		w.Time = &input.Time
	}
	if input.DistanceMiles > 0 {
		w.DistanceMiles = &input.DistanceMiles
	}
	if input.DurationMinutes > 0 {
		w.DurationMinutes = &input.DurationMinutes
	}
	if input.AvgHeartRate > 0 {
		w.AvgHeartRate = &input.AvgHeartRate
	}
	if input.CaloriesBurned > 0 {
		w.CaloriesBurned = &input.CaloriesBurned
	}
	if input.Notes != "" {
		w.Notes = &input.Notes
	}

	if err := s.repo.CreateCardioWorkout(w); err != nil {
		return nil, cardioOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, cardioOutput{
		ID:      w.ID,
		Pace:    w.PaceMinPerMile,
		Message: fmt.Sprintf("Logged %s workout on %s", at.Name, w.Date),
	}, nil
}

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.FoodItem == "" {
		return nil, simpleOutput{}, fmt.Errorf("food_item is required")
	}
	mt, err := s.findOrCreateMealType(input.MealType)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	e := models.NewFoodEntry(orToday(input.Date), mt.ID, input.FoodItem)
	if input.Time != "" {
		e.Time = &input.Time
	}
	if input.Quantity != "" {
		e.Quantity = &input.Quantity
	}
	if input.Calories > 0 {
		e.Calories = &input.Calories
	}
	if input.Notes != "" {
		e.Notes = &input.Notes
	}

	if err := s.repo.CreateFoodEntry(e); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log food: %w", err)
	}

	return nil, simpleOutput{
		ID:      e.ID,
		Message: fmt.Sprintf("Logged %s (%s) on %s", e.FoodItem, mt.Name, e.Date),
	}, nil
}

func (s *Server) handleLogHealth(ctx context.Context, req *mcp.CallToolRequest, input logHealthInput) (*mcp.CallToolResult, healthOutput, error) {
	r := models.NewHealthRecord(orToday(input.Date))
	if input.Time != "" {
		r.Time = &input.Time
	}
	if input.Systolic > 0 {
		r.Systolic = &input.Systolic
	}
	if input.Diastolic > 0 {
		r.Diastolic = &input.Diastolic
	}
	if input.BPM > 0 {
		r.BPM = &input.BPM
	}
	if input.WeightLbs > 0 {
		r.WithWeight(input.WeightLbs)
	}

	if err := s.repo.CreateHealthRecord(r); err != nil {
		return nil, healthOutput{}, fmt.Errorf("failed to log health record: %w", err)
	}

	return nil, healthOutput{
		ID:      r.ID,
		BMI:     r.BMI,
		Message: fmt.Sprintf("Logged health record on %s", r.Date),
	}, nil
}

func (s *Server) handleCardioDashboard(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, []*models.CardioWeek, error) {
	weeks, err := s.repo.CardioDashboard()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return nil, weeks, nil
}

func (s *Server) handleStrengthData(ctx context.Context, req *mcp.CallToolRequest, input strengthDataInput) (*mcp.CallToolResult, *models.StrengthSeries, error) {
	series, err := s.repo.StrengthData(input.ExerciseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load strength data: %w", err)
	}
	return nil, series, nil
}

// handleBMI uses the metric conversion because the caller can supply a
// height; stored health records use the fixed-height imperial formula.
func (s *Server) handleBMI(ctx context.Context, req *mcp.CallToolRequest, input bmiInput) (*mcp.CallToolResult, bmiOutput, error) {
	if input.WeightLbs <= 0 {
		return nil, bmiOutput{}, fmt.Errorf("weight_lbs must be positive")
	}
	height := input.HeightInches
	if height <= 0 {
		height = models.DefaultHeightInches
	}
	return nil, bmiOutput{BMI: models.BMIMetric(input.WeightLbs, height)}, nil
}

// Helpers

func (s *Server) findOrCreateActivityType(name string) (*models.ActivityType, error) {
	if name == "" {
		return nil, fmt.Errorf("activity_type is required")
	}
	types, err := s.repo.ListActivityTypes()
	if err != nil {
		return nil, err
	}
	for _, at := range types {
		if strings.EqualFold(at.Name, name) {
			return at, nil
		}
	}
	at := &models.ActivityType{Name: name}
	if err := s.repo.CreateActivityType(at); err != nil {
		return nil, err
	}
	return at, nil
}

func (s *Server) findOrCreateMealType(name string) (*models.MealType, error) {
	if name == "" {
		return nil, fmt.Errorf("meal_type is required")
	}
	types, err := s.repo.ListMealTypes()
	if err != nil {
		return nil, err
	}
	for _, mt := range types {
		if strings.EqualFold(mt.Name, name) {
			return mt, nil
		}
	}
	mt := &models.MealType{Name: name}
	if err := s.repo.CreateMealType(mt); err != nil {
		return nil, err
	}
	return mt, nil
}

func orToday(date string) string {
	if date != "" {
		return date
	}
	return time.Now().Format("2006-01-02")
}
