package services

import (
	"context"
	"fmt"

	"github.com/icedmoch/doorsmashorpass/entity"
	"github.com/icedmoch/doorsmashorpass/repository"
	"github.com/icedmoch/doorsmashorpass/utils"
	"gorm.io/gorm"
)

// Delivery fee split, in cents: the customer pays $10.00, the platform keeps
// $0.20, the deliverer's connected account receives the rest.
const (
	DeliveryFeeCents = 1000
	PlatformFeeCents = 20
)

// PaymentProvider is the external payments collaborator. The live
// implementation is utils.StripeClient; tests substitute a fake.
type PaymentProvider interface {
	CreateSplitSession(ctx context.Context, in utils.SplitSessionIn) (*utils.SplitSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*utils.SessionStatus, error)
}

type PaymentService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository
	Provider  PaymentProvider

	// Checkout redirect base (the web app origin).
	FrontendOrigin string
}

func NewPaymentService(
	db *gorm.DB,
	or *repository.OrderRepository,
	ur *repository.UserRepository,
	provider PaymentProvider,
	frontendOrigin string,
) *PaymentService {
	return &PaymentService{
		DB: db, OrderRepo: or, UserRepo: ur,
		Provider: provider, FrontendOrigin: frontendOrigin,
	}
}

type PaymentSessionOut struct {
	SessionID       string `json:"sessionId"`
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
	URL             string `json:"url"`
}

// CreateDeliverySession requests a destination-charge Checkout session for
// the order's delivery fee. Preconditions: the caller owns the order, a
// deliverer is assigned, and the deliverer has a payout account. Idempotent —
// once a session is stored on the order it is returned as-is without
// contacting the provider again.
func (s *PaymentService) CreateDeliverySession(ctx context.Context, userID, orderID uint) (*PaymentSessionOut, error) {
	o, err := s.OrderRepo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}

	if o.StripeSessionID != "" {
		return &PaymentSessionOut{
			SessionID:       o.StripeSessionID,
			PaymentIntentID: o.StripePaymentIntentID,
			URL:             o.StripeCheckoutURL,
		}, nil
	}

	if entity.IsTerminalStatus(o.Status) {
		return nil, fmt.Errorf("%w: order is %s", ErrIllegalTransition, o.Status)
	}
	if o.DelivererID == nil {
		return nil, fmt.Errorf("%w: order has no deliverer", ErrIllegalTransition)
	}
	deliverer, err := s.UserRepo.FindByID(*o.DelivererID)
	if err != nil {
		return nil, err
	}
	if deliverer.StripeAccountID == "" {
		return nil, ErrPayoutAccountMissing
	}

	session, err := s.Provider.CreateSplitSession(ctx, utils.SplitSessionIn{
		AmountCents:        DeliveryFeeCents,
		PlatformFeeCents:   PlatformFeeCents,
		DestinationAccount: deliverer.StripeAccountID,
		ProductName:        "Delivery Fee",
		ProductDescription: fmt.Sprintf("Delivery for Order #%d", orderID),
		SuccessURL:         fmt.Sprintf("%s/orders?payment=success&order=%d", s.FrontendOrigin, orderID),
		CancelURL:          fmt.Sprintf("%s/orders?payment=cancelled&order=%d", s.FrontendOrigin, orderID),
		Metadata: map[string]string{
			"order_id":     fmt.Sprint(orderID),
			"deliverer_id": fmt.Sprint(*o.DelivererID),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create payment session: %w", err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		_, err := s.OrderRepo.SetPaymentSession(tx, orderID, session.SessionID, session.PaymentIntentID, session.URL)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &PaymentSessionOut{
		SessionID:       session.SessionID,
		PaymentIntentID: session.PaymentIntentID,
		URL:             session.URL,
	}, nil
}

type PaymentStatusOut struct {
	PaymentStatus   string `json:"paymentStatus"`
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
}

// VerifyPayment reads the session's payment status from the provider and
// backfills the payment-intent reference when the session was created before
// the intent existed.
func (s *PaymentService) VerifyPayment(ctx context.Context, userID, orderID uint) (*PaymentStatusOut, error) {
	o, err := s.OrderRepo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	if o.StripeSessionID == "" {
		return nil, fmt.Errorf("%w: no payment session for order", ErrIllegalTransition)
	}

	status, err := s.Provider.RetrieveSession(ctx, o.StripeSessionID)
	if err != nil {
		return nil, fmt.Errorf("retrieve payment session: %w", err)
	}

	if o.StripePaymentIntentID == "" && status.PaymentIntentID != "" {
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			return s.OrderRepo.SetPaymentIntent(tx, orderID, status.PaymentIntentID)
		})
		if err != nil {
			return nil, err
		}
	}

	return &PaymentStatusOut{
		PaymentStatus:   status.PaymentStatus,
		PaymentIntentID: status.PaymentIntentID,
	}, nil
}
