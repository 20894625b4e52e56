package services

import (
	"time"

	"github.com/icedmoch/doorsmashorpass/entity"
	"github.com/icedmoch/doorsmashorpass/repository"
)

// MenuService exposes the dining-hall catalog.
type MenuService struct {
	FoodRepo *repository.FoodRepository
}

func NewMenuService(fr *repository.FoodRepository) *MenuService {
	return &MenuService{FoodRepo: fr}
}

// Browse lists the items on offer for a day, optionally narrowed by meal
// type and dining hall. Zero date means today.
func (s *MenuService) Browse(date time.Time, mealType, location string) ([]entity.FoodItem, error) {
	if date.IsZero() {
		date = time.Now()
	}
	return s.FoodRepo.ListMenu(date, mealType, location)
}

func (s *MenuService) Detail(id uint) (*entity.FoodItem, error) {
	return s.FoodRepo.GetByID(id)
}

func (s *MenuService) Locations() ([]string, error) {
	return s.FoodRepo.Locations()
}
