package services

import (
	"errors"
	"time"

	"github.com/icedmoch/doorsmashorpass/entity"
	"github.com/icedmoch/doorsmashorpass/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Events   EventPublisher
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	events EventPublisher,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Events: events}
}

type CheckoutIn struct {
	DeliveryLocation    string     `json:"deliveryLocation" binding:"required"`
	DeliveryLatitude    *float64   `json:"deliveryLatitude"`
	DeliveryLongitude   *float64   `json:"deliveryLongitude"`
	DeliveryTime        *time.Time `json:"deliveryTime"`
	SpecialInstructions string     `json:"specialInstructions"`
}

type CheckoutOut struct {
	ID            uint    `json:"id"`
	Status        string  `json:"status"`
	TotalCalories float64 `json:"totalCalories"`
}

// Checkout turns the stored cart into an Order. Items are snapshotted —
// name and per-unit macros are copied so later catalog edits never rewrite
// order history — totals are summed, and the cart is cleared, all in one
// transaction.
func (s *OrderService) Checkout(userID uint, in *CheckoutIn) (*CheckoutOut, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	var out CheckoutOut
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			UserID:              userID,
			DeliveryLocation:    in.DeliveryLocation,
			DeliveryLatitude:    in.DeliveryLatitude,
			DeliveryLongitude:   in.DeliveryLongitude,
			DeliveryTime:        in.DeliveryTime,
			SpecialInstructions: in.SpecialInstructions,
			Status:              entity.StatusPending,
		}
		for _, it := range cart.Items {
			q := float64(it.Quantity)
			order.TotalCalories += it.FoodItem.Calories * q
			order.TotalProtein += it.FoodItem.Protein * q
			order.TotalCarbs += it.FoodItem.TotalCarb * q
			order.TotalFat += it.FoodItem.TotalFat * q
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				FoodItemID: it.FoodItemID,
				FoodName:   it.FoodItem.Name,
				Quantity:   it.Quantity,
				Calories:   it.FoodItem.Calories,
				Protein:    it.FoodItem.Protein,
				TotalCarb:  it.FoodItem.TotalCarb,
				TotalFat:   it.FoodItem.TotalFat,
				DiningHall: it.FoodItem.Location,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}

		out = CheckoutOut{ID: order.ID, Status: order.Status, TotalCalories: order.TotalCalories}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

// Detail is visible to the order's owner and its claimant.
func (s *OrderService) Detail(viewerID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != viewerID && (o.DelivererID == nil || *o.DelivererID != viewerID) {
		return nil, ErrForbidden
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// Cancel soft-cancels the caller's own order from any non-terminal state.
func (s *OrderService) Cancel(userID, orderID uint) error {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return err
	}
	if err := CanCancel(o); err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.CancelOrder(tx, orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrIllegalTransition
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Events != nil {
		s.Events.PublishOrderEvent(OrderEvent{OrderID: orderID, Status: entity.StatusCancelled})
	}
	return nil
}

// Advance moves the kitchen stage one step (staff action).
func (s *OrderService) Advance(orderID uint) (string, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return "", err
	}
	next, err := NextKitchenStatus(o.Status)
	if err != nil {
		return "", err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.UpdateStatusFromTo(tx, orderID, o.Status, next)
		if err != nil {
			return err
		}
		if !ok {
			return ErrIllegalTransition
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if s.Events != nil {
		s.Events.PublishOrderEvent(OrderEvent{OrderID: orderID, Status: next, DelivererID: o.DelivererID})
	}
	return next, nil
}
