// ABOUTME: FoodEntry model for the food log.
// ABOUTME: Entries belong to a MealType; quantity is free text.
package models

// FoodEntry is one food log row. MealName is populated on reads via the
// meal_types join so callers never see a bare foreign key.
type FoodEntry struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"`
	Time       *string `json:"time"`
	MealTypeID int64   `json:"meal_type_id"`
	MealName   string  `json:"meal_name,omitempty"`
	FoodItem   string  `json:"food_item"`
	Quantity   *string `json:"quantity"`
	Calories   *int    `json:"calories"`
	Notes      *string `json:"notes"`
}

// NewFoodEntry creates a food log entry.
func NewFoodEntry(date string, mealTypeID int64, foodItem string) *FoodEntry {
	return &FoodEntry{Date: date, MealTypeID: mealTypeID, FoodItem: foodItem}
}
