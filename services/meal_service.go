package services

import (
	"fmt"
	"time"

	"github.com/icedmoch/doorsmashorpass/entity"
	"github.com/icedmoch/doorsmashorpass/repository"
	"gorm.io/gorm"
)

// MealService logs consumption events against catalog items.
type MealService struct {
	MealRepo  *repository.MealRepository
	FoodRepo  *repository.FoodRepository
	OrderRepo *repository.OrderRepository
}

func NewMealService(mr *repository.MealRepository, fr *repository.FoodRepository, or *repository.OrderRepository) *MealService {
	return &MealService{MealRepo: mr, FoodRepo: fr, OrderRepo: or}
}

type LogMealIn struct {
	FoodItemID   uint      `json:"foodItemId" binding:"required"`
	MealCategory string    `json:"mealCategory" binding:"required,oneof=Breakfast Lunch Dinner"`
	EntryDate    time.Time `json:"entryDate"`
	Servings     float64   `json:"servings"`
}

func (s *MealService) Log(userID uint, in *LogMealIn) (*entity.MealEntry, error) {
	if in.Servings == 0 {
		in.Servings = 1
	}
	if in.Servings <= 0 {
		return nil, fmt.Errorf("%w: servings must be positive", ErrValidation)
	}
	if in.EntryDate.IsZero() {
		in.EntryDate = time.Now()
	}

	// The entry references the catalog row; nutrition stays derived, not copied.
	if _, err := s.FoodRepo.GetByID(in.FoodItemID); err != nil {
		return nil, err
	}

	e := &entity.MealEntry{
		UserID:       userID,
		FoodItemID:   in.FoodItemID,
		MealCategory: in.MealCategory,
		EntryDate:    in.EntryDate,
		Servings:     in.Servings,
	}
	if err := s.MealRepo.Create(e); err != nil {
		return nil, err
	}
	return s.MealRepo.GetForUser(userID, e.ID)
}

type LogOrderIn struct {
	MealCategory string    `json:"mealCategory" binding:"required,oneof=Breakfast Lunch Dinner"`
	EntryDate    time.Time `json:"entryDate"`
}

// LogOrderItems records a whole order as meal entries, one per line with
// servings equal to the ordered quantity. Only the order's owner may log it;
// lines whose catalog item has since been removed are skipped.
func (s *MealService) LogOrderItems(userID, orderID uint, in *LogOrderIn) ([]entity.MealEntry, error) {
	if in.EntryDate.IsZero() {
		in.EntryDate = time.Now()
	}

	if _, err := s.OrderRepo.GetOrderForUser(userID, orderID); err != nil {
		return nil, err
	}
	items, err := s.OrderRepo.GetOrderItems(orderID)
	if err != nil {
		return nil, err
	}

	var logged []entity.MealEntry
	for _, it := range items {
		if it.FoodItemID == 0 {
			continue
		}
		if _, err := s.FoodRepo.GetByID(it.FoodItemID); err != nil {
			continue
		}
		e := entity.MealEntry{
			UserID:       userID,
			FoodItemID:   it.FoodItemID,
			MealCategory: in.MealCategory,
			EntryDate:    in.EntryDate,
			Servings:     float64(it.Quantity),
		}
		if err := s.MealRepo.Create(&e); err != nil {
			return nil, err
		}
		full, err := s.MealRepo.GetForUser(userID, e.ID)
		if err != nil {
			return nil, err
		}
		logged = append(logged, *full)
	}
	return logged, nil
}

// ListByDate groups a day's entries by meal category for rendering.
func (s *MealService) ListByDate(userID uint, date time.Time) (map[string][]entity.MealEntry, error) {
	entries, err := s.MealRepo.ListByDate(userID, date)
	if err != nil {
		return nil, err
	}
	grouped := map[string][]entity.MealEntry{
		"Breakfast": {}, "Lunch": {}, "Dinner": {},
	}
	for _, e := range entries {
		grouped[e.MealCategory] = append(grouped[e.MealCategory], e)
	}
	return grouped, nil
}

func (s *MealService) UpdateServings(userID, entryID uint, servings float64) error {
	if servings <= 0 {
		return fmt.Errorf("%w: servings must be positive", ErrValidation)
	}
	affected, err := s.MealRepo.UpdateServings(userID, entryID, servings)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *MealService) Delete(userID, entryID uint) error {
	affected, err := s.MealRepo.Delete(userID, entryID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
