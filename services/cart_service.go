package services

import (
	"github.com/icedmoch/doorsmashorpass/entity"
	"github.com/icedmoch/doorsmashorpass/repository"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	FoodRepo *repository.FoodRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, fr *repository.FoodRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, FoodRepo: fr}
}

type AddToCartIn struct {
	FoodItemID uint `json:"foodItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"min=1"`
}

// CartTotals aggregates the cart's nutrition for display and for checkout.
type CartTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, CartTotals, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, CartTotals{}, err
	}
	return c, totalsOf(c), nil
}

func totalsOf(c *entity.Cart) CartTotals {
	var t CartTotals
	for _, it := range c.Items {
		q := float64(it.Quantity)
		t.Calories += it.FoodItem.Calories * q
		t.Protein += it.FoodItem.Protein * q
		t.Carbs += it.FoodItem.TotalCarb * q
		t.Fat += it.FoodItem.TotalFat * q
	}
	return t
}

func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	item, err := s.FoodRepo.GetByID(in.FoodItemID)
	if err != nil {
		return err
	}

	line := &entity.CartItem{
		FoodItemID: item.ID,
		Quantity:   in.Quantity,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
