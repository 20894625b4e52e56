package utils

import (
	"math"
	"strings"
)

// activityMultipliers maps activity level (1..5) to its TDEE multiplier.
// Single source of truth — also used to validate onboarding input.
var activityMultipliers = map[int]float64{
	1: 1.2,   // sedentary
	2: 1.375, // light exercise 1-3 days/week
	3: 1.55,  // moderate exercise 3-5 days/week
	4: 1.725, // heavy exercise 6-7 days/week
	5: 1.9,   // very heavy exercise, physical job
}

// BMR computes basal metabolic rate (kcal/day) with the Mifflin-St Jeor
// equation: 10*kg + 6.25*cm - 5*age + s, where s is +5 for males and -161
// otherwise. Inputs are imperial (inches/lbs); callers validate positivity —
// NaN in means NaN out.
func BMR(heightInches, weightLbs, age float64, sex string) float64 {
	heightCm := heightInches * 2.54
	weightKg := weightLbs * 0.453592

	bmr := 10*weightKg + 6.25*heightCm - 5*age

	s := strings.ToUpper(strings.TrimSpace(sex))
	if s == "MALE" || s == "M" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return round2(bmr)
}

// TDEE scales a BMR by the activity multiplier. Unrecognized levels fall
// back to sedentary (1.2).
func TDEE(bmr float64, activityLevel int) float64 {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = 1.2
	}
	return round2(bmr * mult)
}

// ValidActivityLevel reports whether level has a defined multiplier.
func ValidActivityLevel(level int) bool {
	_, ok := activityMultipliers[level]
	return ok
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
