package services

import (
	"errors"
	"testing"

	"github.com/icedmoch/doorsmashorpass/entity"
)

func uintPtr(v uint) *uint { return &v }

func TestCanClaim(t *testing.T) {
	cases := []struct {
		name      string
		order     entity.Order
		deliverer uint
		wantErr   bool
	}{
		{"pending unclaimed", entity.Order{UserID: 1, Status: entity.StatusPending}, 2, false},
		{"preparing unclaimed", entity.Order{UserID: 1, Status: entity.StatusPreparing}, 2, false},
		{"ready unclaimed", entity.Order{UserID: 1, Status: entity.StatusReady}, 2, false},
		{"own order", entity.Order{UserID: 2, Status: entity.StatusPending}, 2, true},
		{"already claimed", entity.Order{UserID: 1, Status: entity.StatusPreparing, DelivererID: uintPtr(3)}, 2, true},
		{"out for delivery", entity.Order{UserID: 1, Status: entity.StatusOutForDelivery}, 2, true},
		{"delivered", entity.Order{UserID: 1, Status: entity.StatusDelivered}, 2, true},
		{"cancelled", entity.Order{UserID: 1, Status: entity.StatusCancelled}, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanClaim(&tc.order, tc.deliverer)
			if tc.wantErr {
				if !errors.Is(err, ErrIllegalTransition) {
					t.Errorf("CanClaim = %v, want ErrIllegalTransition", err)
				}
			} else if err != nil {
				t.Errorf("CanClaim = %v, want nil", err)
			}
		})
	}
}

func TestStatusAfterClaim(t *testing.T) {
	if got := StatusAfterClaim(entity.StatusPending); got != entity.StatusPreparing {
		t.Errorf("claiming pending order: status = %s, want preparing", got)
	}
	for _, s := range []string{entity.StatusPreparing, entity.StatusReady} {
		if got := StatusAfterClaim(s); got != s {
			t.Errorf("claiming %s order: status = %s, want unchanged", s, got)
		}
	}
}

func TestCanUnclaim(t *testing.T) {
	claimed := entity.Order{UserID: 1, Status: entity.StatusPreparing, DelivererID: uintPtr(2)}
	if err := CanUnclaim(&claimed); err != nil {
		t.Errorf("CanUnclaim(claimed) = %v, want nil", err)
	}

	unclaimed := entity.Order{UserID: 1, Status: entity.StatusPending}
	if err := CanUnclaim(&unclaimed); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("CanUnclaim(unclaimed) = %v, want ErrIllegalTransition", err)
	}

	cancelled := entity.Order{UserID: 1, Status: entity.StatusCancelled, DelivererID: uintPtr(2)}
	if err := CanUnclaim(&cancelled); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("CanUnclaim(cancelled) = %v, want ErrIllegalTransition", err)
	}
}

func TestCanComplete(t *testing.T) {
	ok := entity.Order{
		UserID: 1, Status: entity.StatusOutForDelivery,
		DelivererID: uintPtr(2), StripePaymentIntentID: "pi_123",
	}
	if err := CanComplete(&ok); err != nil {
		t.Errorf("CanComplete(paid, claimed) = %v, want nil", err)
	}

	noDeliverer := entity.Order{UserID: 1, Status: entity.StatusReady, StripePaymentIntentID: "pi_123"}
	if err := CanComplete(&noDeliverer); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("CanComplete(no deliverer) = %v, want ErrIllegalTransition", err)
	}

	unpaid := entity.Order{UserID: 1, Status: entity.StatusOutForDelivery, DelivererID: uintPtr(2)}
	if err := CanComplete(&unpaid); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("CanComplete(unpaid) = %v, want ErrIllegalTransition", err)
	}

	delivered := entity.Order{
		UserID: 1, Status: entity.StatusDelivered,
		DelivererID: uintPtr(2), StripePaymentIntentID: "pi_123",
	}
	if err := CanComplete(&delivered); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("CanComplete(delivered) = %v, want ErrIllegalTransition", err)
	}
}

func TestCanCancel(t *testing.T) {
	for _, s := range []string{
		entity.StatusPending, entity.StatusPreparing,
		entity.StatusReady, entity.StatusOutForDelivery,
	} {
		o := entity.Order{UserID: 1, Status: s}
		if err := CanCancel(&o); err != nil {
			t.Errorf("CanCancel(%s) = %v, want nil", s, err)
		}
	}
	for _, s := range []string{entity.StatusDelivered, entity.StatusCancelled} {
		o := entity.Order{UserID: 1, Status: s}
		if err := CanCancel(&o); !errors.Is(err, ErrIllegalTransition) {
			t.Errorf("CanCancel(%s) = %v, want ErrIllegalTransition", s, err)
		}
	}
}

func TestNextKitchenStatus(t *testing.T) {
	steps := map[string]string{
		entity.StatusPending:   entity.StatusPreparing,
		entity.StatusPreparing: entity.StatusReady,
		entity.StatusReady:     entity.StatusOutForDelivery,
	}
	for from, want := range steps {
		got, err := NextKitchenStatus(from)
		if err != nil || got != want {
			t.Errorf("NextKitchenStatus(%s) = %s, %v; want %s", from, got, err, want)
		}
	}
	for _, from := range []string{
		entity.StatusOutForDelivery, entity.StatusDelivered, entity.StatusCancelled, "bogus",
	} {
		if _, err := NextKitchenStatus(from); !errors.Is(err, ErrIllegalTransition) {
			t.Errorf("NextKitchenStatus(%s) = %v, want ErrIllegalTransition", from, err)
		}
	}
}
