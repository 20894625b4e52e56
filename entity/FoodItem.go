package entity

import (
	"time"

	"gorm.io/gorm"
)

// FoodItem is a catalog row ingested from the dining-hall menus.
// Items carrying a Date only appear on that day's menu; undated items are
// treated as always available.
type FoodItem struct {
	gorm.Model
	Name         string  `gorm:"not null" json:"name"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	TotalCarb    float64 `json:"totalCarb"`
	TotalFat     float64 `json:"totalFat"`
	Sodium       float64 `json:"sodium"`
	DietaryFiber float64 `json:"dietaryFiber"`
	Sugars       float64 `json:"sugars"`
	ServingSize  string  `json:"servingSize"`

	Location string     `json:"location,omitempty"` // dining hall
	MealType string     `json:"mealType,omitempty"` // Breakfast | Lunch | Dinner
	Date     *time.Time `json:"date,omitempty"`
}
