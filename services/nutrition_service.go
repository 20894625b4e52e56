package services

import (
	"math"
	"time"

	"github.com/icedmoch/doorsmashorpass/entity"
	"github.com/icedmoch/doorsmashorpass/repository"
	"github.com/icedmoch/doorsmashorpass/utils"
)

type MacroGoals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DeriveGoals resolves the user's daily targets. Precedence, first match wins:
//  1. explicit goal_calories, missing macros filled with fallbacks
//  2. complete metrics → TDEE split: 0.8 g protein per lb, 30% of calories
//     as fat, carbs take the remainder
//  3. defaults: 2000 kcal / weight*0.8 protein / 250 carbs / 70 fat
//
// Total over whatever fields the profile has; never errors.
func DeriveGoals(u *entity.User) MacroGoals {
	if u != nil && u.GoalCalories != nil {
		g := MacroGoals{Calories: *u.GoalCalories, Carbs: 250, Fat: 70}
		switch {
		case u.GoalProtein != nil:
			g.Protein = *u.GoalProtein
		case u.WeightLbs != nil:
			g.Protein = math.Round(*u.WeightLbs * 0.8)
		default:
			g.Protein = 150
		}
		if u.GoalCarbs != nil {
			g.Carbs = *u.GoalCarbs
		}
		if u.GoalFat != nil {
			g.Fat = *u.GoalFat
		}
		return g
	}

	if u != nil && u.Age != nil && u.HeightInches != nil && u.WeightLbs != nil &&
		u.Sex != "" && u.ActivityLevel != nil {
		bmr := utils.BMR(*u.HeightInches, *u.WeightLbs, float64(*u.Age), u.Sex)
		tdee := utils.TDEE(bmr, *u.ActivityLevel)

		protein := math.Round(*u.WeightLbs * 0.8)
		fatCalories := math.Round(tdee * 0.30)
		fat := math.Round(fatCalories / 9)
		proteinCalories := protein * 4
		carbCalories := tdee - proteinCalories - fatCalories
		carbs := math.Round(carbCalories / 4)

		return MacroGoals{
			Calories: math.Round(tdee),
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		}
	}

	defaultWeight := 150.0
	if u != nil && u.WeightLbs != nil {
		defaultWeight = *u.WeightLbs
	}
	return MacroGoals{
		Calories: 2000,
		Protein:  math.Round(defaultWeight * 0.8),
		Carbs:    250,
		Fat:      70,
	}
}

// NutritionService reports goals and daily progress against logged meals.
type NutritionService struct {
	UserRepo *repository.UserRepository
	MealRepo *repository.MealRepository
}

func NewNutritionService(ur *repository.UserRepository, mr *repository.MealRepository) *NutritionService {
	return &NutritionService{UserRepo: ur, MealRepo: mr}
}

func (s *NutritionService) Goals(userID uint) (MacroGoals, error) {
	u, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return MacroGoals{}, err
	}
	return DeriveGoals(u), nil
}

type MacroProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

type DailySummary struct {
	Date     string                   `json:"date"`
	Goals    MacroGoals               `json:"goals"`
	Totals   MacroGoals               `json:"totals"`
	Progress map[string]MacroProgress `json:"progress"`
}

// DailySummary sums the day's meal entries (food macros × servings) and
// reports them against the derived goals.
func (s *NutritionService) DailySummary(userID uint, date time.Time) (*DailySummary, error) {
	u, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	goals := DeriveGoals(u)

	entries, err := s.MealRepo.ListByDate(userID, date)
	if err != nil {
		return nil, err
	}

	var totals MacroGoals
	for _, e := range entries {
		totals.Calories += e.FoodItem.Calories * e.Servings
		totals.Protein += e.FoodItem.Protein * e.Servings
		totals.Carbs += e.FoodItem.TotalCarb * e.Servings
		totals.Fat += e.FoodItem.TotalFat * e.Servings
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	return &DailySummary{
		Date:   date.Format("2006-01-02"),
		Goals:  goals,
		Totals: totals,
		Progress: map[string]MacroProgress{
			"calories": {Consumed: totals.Calories, Goal: goals.Calories, Percent: pct(totals.Calories, goals.Calories)},
			"protein":  {Consumed: totals.Protein, Goal: goals.Protein, Percent: pct(totals.Protein, goals.Protein)},
			"carbs":    {Consumed: totals.Carbs, Goal: goals.Carbs, Percent: pct(totals.Carbs, goals.Carbs)},
			"fat":      {Consumed: totals.Fat, Goal: goals.Fat, Percent: pct(totals.Fat, goals.Fat)},
		},
	}, nil
}
