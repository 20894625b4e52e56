package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"not null;default:student" json:"role"`

	// Body metrics from onboarding; all optional until the user fills them in.
	Age           *int     `json:"age,omitempty"`
	Sex           string   `json:"sex,omitempty"` // "male" | "female" | "other"
	HeightInches  *float64 `json:"heightInches,omitempty"`
	WeightLbs     *float64 `json:"weightLbs,omitempty"`
	ActivityLevel *int     `json:"activityLevel,omitempty"` // 1..5

	// Cached energy numbers, recomputed whenever metrics change.
	BMR  *float64 `json:"bmr,omitempty"`
	TDEE *float64 `json:"tdee,omitempty"`

	// Explicit daily goals; GoalCalories set overrides the computed targets.
	GoalCalories *float64 `json:"goalCalories,omitempty"`
	GoalProtein  *float64 `json:"goalProtein,omitempty"`
	GoalCarbs    *float64 `json:"goalCarbs,omitempty"`
	GoalFat      *float64 `json:"goalFat,omitempty"`

	DietaryPreferences string `json:"dietaryPreferences"` // comma-separated tags
	GoalDescription    string `json:"goalDescription"`

	// Stripe connected account; empty until payout onboarding completes.
	StripeAccountID string `json:"-"`

	// Relations — preload only when needed
	Orders      []Order     `json:"-"`
	MealEntries []MealEntry `json:"-"`
}
