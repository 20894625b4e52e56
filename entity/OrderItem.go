package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots the food item at checkout time. Name and macros are
// copied, not referenced, so later catalog changes never alter past orders.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	// FoodItemID keeps the catalog reference for relogging delivered orders
	// as meal entries; the snapshot fields below stay authoritative for
	// display and totals.
	FoodItemID uint `json:"foodItemId"`

	FoodName   string  `gorm:"not null" json:"foodName"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	Calories   float64 `json:"calories"` // per unit
	Protein    float64 `json:"protein"`
	TotalCarb  float64 `json:"totalCarb"`
	TotalFat   float64 `json:"totalFat"`
	DiningHall string  `json:"diningHall,omitempty"`
}
