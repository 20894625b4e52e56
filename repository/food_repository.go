package repository

import (
	"time"

	"github.com/icedmoch/doorsmashorpass/entity"
	"gorm.io/gorm"
)

type FoodRepository struct {
	DB *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

func (r *FoodRepository) Create(item *entity.FoodItem) error {
	return r.DB.Create(item).Error
}

func (r *FoodRepository) GetByID(id uint) (*entity.FoodItem, error) {
	var item entity.FoodItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListMenu returns the menu visible on a given day: date-scoped items for
// that day plus undated (always-available) items. mealType and location
// filter when non-empty.
func (r *FoodRepository) ListMenu(date time.Time, mealType, location string) ([]entity.FoodItem, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	q := r.DB.Model(&entity.FoodItem{}).
		Where("date IS NULL OR (date >= ? AND date < ?)", day, day.Add(24*time.Hour))
	if mealType != "" {
		q = q.Where("meal_type = ?", mealType)
	}
	if location != "" {
		q = q.Where("location = ?", location)
	}

	var items []entity.FoodItem
	err := q.Order("name ASC").Find(&items).Error
	return items, err
}

// Locations lists the distinct dining halls present in the catalog.
func (r *FoodRepository) Locations() ([]string, error) {
	var out []string
	err := r.DB.Model(&entity.FoodItem{}).
		Distinct("location").Where("location <> ''").
		Order("location ASC").Pluck("location", &out).Error
	return out, err
}
