package repository

import (
	"time"

	"github.com/icedmoch/doorsmashorpass/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID            uint      `json:"id"`
	Status        string    `json:"status"`
	DelivererID   *uint     `json:"delivererId,omitempty"`
	TotalCalories float64   `json:"totalCalories"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, status, deliverer_id, total_calories, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ---------------- Delivery board ----------------

// claimableStatuses are the states an unclaimed order may be picked up in.
var claimableStatuses = []string{
	entity.StatusPending, entity.StatusPreparing, entity.StatusReady,
}

// ListAvailable returns unclaimed orders the viewer could deliver — not their
// own, not terminal, not past the claimable stage.
func (r *OrderRepository) ListAvailable(viewerID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.
		Where("deliverer_id IS NULL AND user_id <> ? AND status IN ?", viewerID, claimableStatuses).
		Order("id ASC").Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListClaimedBy(delivererID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Where("deliverer_id = ?", delivererID).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

// ---------------- Guarded transitions ----------------
//
// Every mutation below is a single conditional UPDATE. The WHERE clause
// restates the transition's preconditions so that concurrent writers cannot
// both succeed: zero rows affected means the order moved underneath us.

// ClaimOrder assigns the deliverer iff the order is still unclaimed, in a
// claimable state, and not the deliverer's own. A pending order advances to
// preparing; later stages keep their status.
func (r *OrderRepository) ClaimOrder(tx *gorm.DB, orderID, delivererID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND deliverer_id IS NULL AND user_id <> ? AND status IN ?",
			orderID, delivererID, claimableStatuses).
		Updates(map[string]any{
			"deliverer_id": delivererID,
			"status": gorm.Expr("CASE WHEN status = ? THEN ? ELSE status END",
				entity.StatusPending, entity.StatusPreparing),
		})
	return res.RowsAffected, res.Error
}

// UnclaimOrder releases a claimed, non-terminal order back to pending.
func (r *OrderRepository) UnclaimOrder(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND deliverer_id IS NOT NULL AND status NOT IN ?",
			orderID, []string{entity.StatusDelivered, entity.StatusCancelled}).
		Updates(map[string]any{
			"deliverer_id": nil,
			"status":       entity.StatusPending,
		})
	return res.RowsAffected, res.Error
}

// MarkDelivered finishes an order: requires a claimant and a recorded
// payment intent. Delivered is terminal.
func (r *OrderRepository) MarkDelivered(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND deliverer_id IS NOT NULL AND stripe_payment_intent_id <> '' AND status NOT IN ?",
			orderID, []string{entity.StatusDelivered, entity.StatusCancelled}).
		Update("status", entity.StatusDelivered)
	return res.RowsAffected, res.Error
}

// CancelOrder soft-cancels from any non-terminal state.
func (r *OrderRepository) CancelOrder(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status NOT IN ?",
			orderID, []string{entity.StatusDelivered, entity.StatusCancelled}).
		Update("status", entity.StatusCancelled)
	return res.RowsAffected, res.Error
}

// UpdateStatusFromTo advances the kitchen stage with a from→to guard.
func (r *OrderRepository) UpdateStatusFromTo(tx *gorm.DB, orderID uint, from, to string) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Payment references ----------------

// SetPaymentSession stores the Stripe references once; a second writer loses
// the guard and the stored session stays authoritative.
func (r *OrderRepository) SetPaymentSession(tx *gorm.DB, orderID uint, sessionID, intentID, checkoutURL string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND stripe_session_id = ''", orderID).
		Updates(map[string]any{
			"stripe_session_id":        sessionID,
			"stripe_payment_intent_id": intentID,
			"stripe_checkout_url":      checkoutURL,
		})
	return res.RowsAffected, res.Error
}

// SetPaymentIntent backfills the intent reference after verification, for
// sessions created before the intent existed.
func (r *OrderRepository) SetPaymentIntent(tx *gorm.DB, orderID uint, intentID string) error {
	return tx.Model(&entity.Order{}).
		Where("id = ? AND stripe_payment_intent_id = ''", orderID).
		Update("stripe_payment_intent_id", intentID).Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}
