// ABOUTME: Tests for the food log and meal type catalog.
// ABOUTME: Duplicate meal type names surface as ErrAlreadyExists.
package storage

import (
	"errors"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
)

func TestCreateAndGetFoodEntry(t *testing.T) {
	db := setupTestDB(t)

	meals, err := db.ListMealTypes()
	if err != nil {
		t.Fatalf("ListMealTypes failed: %v", err)
	}

	e := models.NewFoodEntry("2025-07-30", meals[0].ID, "Oatmeal")
	e.Quantity = sptr("1 bowl")
	e.Calories = iptr(350)

	if err := db.CreateFoodEntry(e); err != nil {
		t.Fatalf("CreateFoodEntry failed: %v", err)
	}

	got, err := db.GetFoodEntry(e.ID)
	if err != nil {
		t.Fatalf("GetFoodEntry failed: %v", err)
	}
	if got.FoodItem != "Oatmeal" {
		t.Errorf("FoodItem = %q, want \"Oatmeal\"", got.FoodItem)
	}
	if got.MealName != meals[0].Name {
		t.Errorf("MealName = %q, want %q", got.MealName, meals[0].Name)
	}
	if got.Calories == nil || *got.Calories != 350 {
		t.Errorf("Calories = %v, want 350", got.Calories)
	}
}

func TestUpdateFoodEntry(t *testing.T) {
	db := setupTestDB(t)

	meals, err := db.ListMealTypes()
	if err != nil {
		t.Fatalf("ListMealTypes failed: %v", err)
	}

	e := models.NewFoodEntry("2025-07-30", meals[0].ID, "Oatmeal")
	if err := db.CreateFoodEntry(e); err != nil {
		t.Fatalf("CreateFoodEntry failed: %v", err)
	}

	e.FoodItem = "Granola"
	e.Calories = iptr(420)
	if err := db.UpdateFoodEntry(e); err != nil {
		t.Fatalf("UpdateFoodEntry failed: %v", err)
	}

	got, err := db.GetFoodEntry(e.ID)
	if err != nil {
		t.Fatalf("GetFoodEntry failed: %v", err)
	}
	if got.FoodItem != "Granola" {
		t.Errorf("FoodItem = %q, want \"Granola\"", got.FoodItem)
	}
}

func TestDeleteFoodEntry(t *testing.T) {
	db := setupTestDB(t)

	meals, err := db.ListMealTypes()
	if err != nil {
		t.Fatalf("ListMealTypes failed: %v", err)
	}

	e := models.NewFoodEntry("2025-07-30", meals[0].ID, "Oatmeal")
	if err := db.CreateFoodEntry(e); err != nil {
		t.Fatalf("CreateFoodEntry failed: %v", err)
	}
	if err := db.DeleteFoodEntry(e.ID); err != nil {
		t.Fatalf("DeleteFoodEntry failed: %v", err)
	}
	if _, err := db.GetFoodEntry(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestCreateMealTypeDuplicate(t *testing.T) {
	db := setupTestDB(t)

	mt := &models.MealType{Name: "Breakfast"} // seeded on init
	err := db.CreateMealType(mt)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}
}

func TestUpdateMealTypeToDuplicate(t *testing.T) {
	db := setupTestDB(t)

	mt := &models.MealType{Name: "Second Breakfast"}
	if err := db.CreateMealType(mt); err != nil {
		t.Fatalf("CreateMealType failed: %v", err)
	}

	mt.Name = "Lunch" // collides with a seeded name
	err := db.UpdateMealType(mt)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}
}
