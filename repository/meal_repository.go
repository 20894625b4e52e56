package repository

import (
	"time"

	"github.com/icedmoch/doorsmashorpass/entity"
	"gorm.io/gorm"
)

type MealRepository struct {
	DB *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{DB: db}
}

func (r *MealRepository) Create(e *entity.MealEntry) error {
	return r.DB.Create(e).Error
}

func (r *MealRepository) GetForUser(userID, entryID uint) (*entity.MealEntry, error) {
	var e entity.MealEntry
	if err := r.DB.Where("id = ? AND user_id = ?", entryID, userID).
		Preload("FoodItem").First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByDate returns the user's entries for one calendar day, food items
// preloaded for macro math.
func (r *MealRepository) ListByDate(userID uint, date time.Time) ([]entity.MealEntry, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var out []entity.MealEntry
	err := r.DB.Where("user_id = ? AND entry_date >= ? AND entry_date < ?",
		userID, day, day.Add(24*time.Hour)).
		Preload("FoodItem").
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// UpdateServings is the only permitted mutation of a logged entry.
func (r *MealRepository) UpdateServings(userID, entryID uint, servings float64) (int64, error) {
	res := r.DB.Model(&entity.MealEntry{}).
		Where("id = ? AND user_id = ?", entryID, userID).
		Update("servings", servings)
	return res.RowsAffected, res.Error
}

func (r *MealRepository) Delete(userID, entryID uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&entity.MealEntry{})
	return res.RowsAffected, res.Error
}
