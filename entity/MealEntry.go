package entity

import (
	"time"

	"gorm.io/gorm"
)

// MealEntry logs one consumption event. Nutrition is derived from the
// referenced FoodItem multiplied by Servings.
type MealEntry struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	FoodItemID uint     `json:"foodItemId"`
	FoodItem   FoodItem `json:"foodItem"`

	MealCategory string    `json:"mealCategory"` // Breakfast | Lunch | Dinner
	EntryDate    time.Time `gorm:"index" json:"entryDate"`
	Servings     float64   `gorm:"not null;default:1" json:"servings"` // > 0
}
