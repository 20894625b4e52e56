package utils

import (
	"math"
	"testing"
)

func closeTo(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestBMR(t *testing.T) {
	cases := []struct {
		name   string
		height float64
		weight float64
		age    float64
		sex    string
		want   float64
	}{
		{"male", 70, 150, 25, "male", 1671.64},
		{"male short form", 70, 150, 25, "m", 1671.64},
		{"male mixed case", 70, 150, 25, "Male", 1671.64},
		{"female", 70, 150, 25, "female", 1505.64},
		{"other uses female offset", 70, 150, 25, "other", 1505.64},
		{"empty sex uses female offset", 70, 150, 25, "", 1505.64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BMR(tc.height, tc.weight, tc.age, tc.sex)
			if !closeTo(got, tc.want) {
				t.Errorf("BMR(%v, %v, %v, %q) = %v, want %v",
					tc.height, tc.weight, tc.age, tc.sex, got, tc.want)
			}
		})
	}
}

func TestBMRSexOffset(t *testing.T) {
	male := BMR(70, 150, 25, "male")
	female := BMR(70, 150, 25, "female")
	if !closeTo(male-female, 166) {
		t.Errorf("male-female BMR gap = %v, want 166", male-female)
	}
}

func TestTDEE(t *testing.T) {
	const bmr = 1671.64
	cases := []struct {
		level int
		want  float64
	}{
		{1, 2005.97},
		{2, 2298.51},
		{3, 2591.04},
		{4, 2883.58},
		{5, 3176.12},
		{0, 2005.97},  // unknown falls back to sedentary
		{99, 2005.97}, // unknown falls back to sedentary
	}
	for _, tc := range cases {
		got := TDEE(bmr, tc.level)
		if !closeTo(got, tc.want) {
			t.Errorf("TDEE(%v, %d) = %v, want %v", bmr, tc.level, got, tc.want)
		}
	}
}

func TestValidActivityLevel(t *testing.T) {
	for level := 1; level <= 5; level++ {
		if !ValidActivityLevel(level) {
			t.Errorf("ValidActivityLevel(%d) = false, want true", level)
		}
	}
	for _, level := range []int{0, 6, -1, 100} {
		if ValidActivityLevel(level) {
			t.Errorf("ValidActivityLevel(%d) = true, want false", level)
		}
	}
}

func TestRoundingTwoDecimals(t *testing.T) {
	got := BMR(69.5, 152.3, 31, "female")
	if got != math.Round(got*100)/100 {
		t.Errorf("BMR not rounded to 2 decimals: %v", got)
	}
}
