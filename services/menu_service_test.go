package services

import (
	"testing"
	"time"

	"github.com/icedmoch/doorsmashorpass/entity"
	"github.com/icedmoch/doorsmashorpass/repository"
	"gorm.io/gorm"
)

func newMenuFixture(t *testing.T) (*MenuService, *gorm.DB) {
	db := newTestDB(t)
	return NewMenuService(repository.NewFoodRepository(db)), db
}

func TestBrowseFiltersByDayMealAndHall(t *testing.T) {
	svc, db := newMenuFixture(t)

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	seedFoodItem(t, db, entity.FoodItem{Name: "Oatmeal", MealType: "Breakfast", Location: "East Commons", Date: &today})
	seedFoodItem(t, db, entity.FoodItem{Name: "Teriyaki Bowl", MealType: "Lunch", Location: "East Commons", Date: &today})
	seedFoodItem(t, db, entity.FoodItem{Name: "Pancakes", MealType: "Breakfast", Location: "West Court", Date: &today})
	seedFoodItem(t, db, entity.FoodItem{Name: "Waffles", MealType: "Breakfast", Location: "East Commons", Date: &tomorrow})
	seedFoodItem(t, db, entity.FoodItem{Name: "Fruit Cup", MealType: "Breakfast", Location: "East Commons"}) // undated, always on

	got, err := svc.Browse(today.Add(9*time.Hour), "Breakfast", "East Commons")
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	names := make([]string, len(got))
	for i, it := range got {
		names[i] = it.Name
	}
	if len(names) != 2 || names[0] != "Fruit Cup" || names[1] != "Oatmeal" {
		t.Errorf("Browse = %v, want [Fruit Cup Oatmeal]", names)
	}
}

func TestBrowseUnfiltered(t *testing.T) {
	svc, db := newMenuFixture(t)
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	seedFoodItem(t, db, entity.FoodItem{Name: "Oatmeal", MealType: "Breakfast", Location: "East Commons", Date: &today})
	seedFoodItem(t, db, entity.FoodItem{Name: "Teriyaki Bowl", MealType: "Lunch", Location: "West Court", Date: &today})

	got, err := svc.Browse(today, "", "")
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Browse returned %d items, want 2", len(got))
	}
}

func TestLocations(t *testing.T) {
	svc, db := newMenuFixture(t)
	seedFoodItem(t, db, entity.FoodItem{Name: "Oatmeal", Location: "East Commons"})
	seedFoodItem(t, db, entity.FoodItem{Name: "Pancakes", Location: "West Court"})
	seedFoodItem(t, db, entity.FoodItem{Name: "Waffles", Location: "East Commons"})
	seedFoodItem(t, db, entity.FoodItem{Name: "Water"}) // no hall

	got, err := svc.Locations()
	if err != nil {
		t.Fatalf("Locations: %v", err)
	}
	if len(got) != 2 || got[0] != "East Commons" || got[1] != "West Court" {
		t.Errorf("Locations = %v, want [East Commons West Court]", got)
	}
}
