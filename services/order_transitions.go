package services

import (
	"fmt"

	"github.com/icedmoch/doorsmashorpass/entity"
)

// Pure lifecycle rules for orders. Status and claimant are orthogonal
// fields; each operation states its preconditions over both. The repository
// layer restates the same predicates in its guarded UPDATEs, so these checks
// give early, descriptive errors while the database stays the arbiter.

// kitchenNext is the linear fulfillment progression staff drive manually.
var kitchenNext = map[string]string{
	entity.StatusPending:   entity.StatusPreparing,
	entity.StatusPreparing: entity.StatusReady,
	entity.StatusReady:     entity.StatusOutForDelivery,
}

// CanClaim reports whether deliverer may take the order.
func CanClaim(o *entity.Order, delivererID uint) error {
	if entity.IsTerminalStatus(o.Status) {
		return fmt.Errorf("%w: order is %s", ErrIllegalTransition, o.Status)
	}
	if o.DelivererID != nil {
		return fmt.Errorf("%w: order already claimed", ErrIllegalTransition)
	}
	if o.UserID == delivererID {
		return fmt.Errorf("%w: cannot claim your own order", ErrIllegalTransition)
	}
	switch o.Status {
	case entity.StatusPending, entity.StatusPreparing, entity.StatusReady:
		return nil
	}
	return fmt.Errorf("%w: order is %s", ErrIllegalTransition, o.Status)
}

// StatusAfterClaim: claiming a pending order starts preparation; orders
// already past that keep their stage.
func StatusAfterClaim(status string) string {
	if status == entity.StatusPending {
		return entity.StatusPreparing
	}
	return status
}

// CanUnclaim: a claimed, non-terminal order may be released back to pending.
func CanUnclaim(o *entity.Order) error {
	if entity.IsTerminalStatus(o.Status) {
		return fmt.Errorf("%w: order is %s", ErrIllegalTransition, o.Status)
	}
	if o.DelivererID == nil {
		return fmt.Errorf("%w: order is not claimed", ErrIllegalTransition)
	}
	return nil
}

// CanComplete: delivery can finish only with a claimant and a recorded
// payment. An unclaimed order can never reach delivered directly.
func CanComplete(o *entity.Order) error {
	if entity.IsTerminalStatus(o.Status) {
		return fmt.Errorf("%w: order is %s", ErrIllegalTransition, o.Status)
	}
	if o.DelivererID == nil {
		return fmt.Errorf("%w: order has no deliverer", ErrIllegalTransition)
	}
	if o.StripePaymentIntentID == "" {
		return fmt.Errorf("%w: delivery fee not paid", ErrIllegalTransition)
	}
	return nil
}

// CanCancel: legal from any non-terminal state.
func CanCancel(o *entity.Order) error {
	if entity.IsTerminalStatus(o.Status) {
		return fmt.Errorf("%w: order is %s", ErrIllegalTransition, o.Status)
	}
	return nil
}

// NextKitchenStatus returns the stage following from, or an error when from
// is not a manually advanceable stage.
func NextKitchenStatus(from string) (string, error) {
	next, ok := kitchenNext[from]
	if !ok {
		return "", fmt.Errorf("%w: cannot advance from %s", ErrIllegalTransition, from)
	}
	return next, nil
}
