package services

import (
	"github.com/icedmoch/doorsmashorpass/entity"
	"github.com/icedmoch/doorsmashorpass/repository"
	"gorm.io/gorm"
)

// DeliveryService mediates peer-to-peer delivery claims. Every mutation is a
// single guarded UPDATE; two deliverers racing for the same order cannot
// both win — the loser's update touches zero rows and surfaces as
// ErrIllegalTransition.
type DeliveryService struct {
	DB     *gorm.DB
	Repo   *repository.OrderRepository
	Events EventPublisher
}

func NewDeliveryService(db *gorm.DB, repo *repository.OrderRepository, events EventPublisher) *DeliveryService {
	return &DeliveryService{DB: db, Repo: repo, Events: events}
}

// ListAvailable shows orders the viewer could claim: unclaimed, not their
// own, still in a claimable stage.
func (s *DeliveryService) ListAvailable(viewerID uint) ([]entity.Order, error) {
	return s.Repo.ListAvailable(viewerID, 50)
}

// ListMine shows the viewer's claimed deliveries, past and active.
func (s *DeliveryService) ListMine(viewerID uint) ([]entity.Order, error) {
	return s.Repo.ListClaimedBy(viewerID)
}

// Claim assigns the viewer as deliverer. The pre-check gives a descriptive
// error; the guarded UPDATE decides the race.
func (s *DeliveryService) Claim(viewerID, orderID uint) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	if err := CanClaim(o, viewerID); err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.ClaimOrder(tx, orderID, viewerID)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Someone else claimed between our read and write.
			return ErrIllegalTransition
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Events != nil {
		s.Events.PublishOrderEvent(OrderEvent{
			OrderID:     orderID,
			Status:      StatusAfterClaim(o.Status),
			DelivererID: &viewerID,
		})
	}
	return nil
}

// Unclaim releases the viewer's claim and resets the order to pending.
func (s *DeliveryService) Unclaim(viewerID, orderID uint) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	if o.DelivererID != nil && *o.DelivererID != viewerID {
		return ErrForbidden
	}
	if err := CanUnclaim(o); err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UnclaimOrder(tx, orderID)
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
		s.Events.PublishOrderEvent(OrderEvent{OrderID: orderID, Status: entity.StatusPending})
	}
	return nil
}

// Complete marks the order delivered. Allowed to the customer confirming
// receipt or the claimant finishing the run; requires a paid delivery fee.
// Delivered is terminal.
func (s *DeliveryService) Complete(viewerID, orderID uint) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	isOwner := o.UserID == viewerID
	isClaimant := o.DelivererID != nil && *o.DelivererID == viewerID
	if !isOwner && !isClaimant {
		return ErrForbidden
	}
	if err := CanComplete(o); err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.MarkDelivered(tx, orderID)
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
		s.Events.PublishOrderEvent(OrderEvent{
			OrderID:     orderID,
			Status:      entity.StatusDelivered,
			DelivererID: o.DelivererID,
		})
	}
	return nil
}
