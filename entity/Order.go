package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"` // preload only for detail with customer name

	DeliveryLocation    string     `gorm:"not null" json:"deliveryLocation"`
	DeliveryLatitude    *float64   `json:"deliveryLatitude,omitempty"`
	DeliveryLongitude   *float64   `json:"deliveryLongitude,omitempty"`
	DeliveryTime        *time.Time `json:"deliveryTime,omitempty"`
	SpecialInstructions string     `json:"specialInstructions,omitempty"`

	Status string `gorm:"not null;default:pending;index" json:"status"`

	// Aggregate nutrition, summed from the item snapshots at checkout.
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFat      float64 `json:"totalFat"`

	// Deliverer is a role assignment, not ownership. NULL until claimed.
	DelivererID *uint `gorm:"index" json:"delivererId,omitempty"`
	Deliverer   *User `gorm:"foreignKey:DelivererID" json:"-"`

	// Stripe references, set once the delivery-fee session is created.
	StripeSessionID       string `json:"-"`
	StripePaymentIntentID string `json:"-"`
	StripeCheckoutURL     string `json:"-"`

	Items []OrderItem `json:"items,omitempty"`
}
