package services

import (
	"context"
	"errors"
	"testing"

	"github.com/icedmoch/doorsmashorpass/entity"
	"github.com/icedmoch/doorsmashorpass/repository"
	"github.com/icedmoch/doorsmashorpass/utils"
)

// fakeProvider records split-session requests and returns canned responses.
type fakeProvider struct {
	createCalls   int
	retrieveCalls int
	lastIn        utils.SplitSessionIn
	paymentStatus string
	intentID      string
}

func (f *fakeProvider) CreateSplitSession(_ context.Context, in utils.SplitSessionIn) (*utils.SplitSession, error) {
	f.createCalls++
	f.lastIn = in
	return &utils.SplitSession{
		SessionID:       "cs_test_1",
		PaymentIntentID: f.intentID,
		URL:             "https://checkout.stripe.test/cs_test_1",
	}, nil
}

func (f *fakeProvider) RetrieveSession(_ context.Context, _ string) (*utils.SessionStatus, error) {
	f.retrieveCalls++
	return &utils.SessionStatus{
		PaymentStatus:   f.paymentStatus,
		PaymentIntentID: f.intentID,
	}, nil
}

func newPaymentFixture(t *testing.T, provider PaymentProvider) (*PaymentService, *repository.OrderRepository) {
	db := newTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	svc := NewPaymentService(db, orderRepo, userRepo, provider, "http://localhost:5173")
	return svc, orderRepo
}

func TestCreateDeliverySessionSplitsFee(t *testing.T) {
	provider := &fakeProvider{}
	svc, repo := newPaymentFixture(t, provider)

	owner := seedUser(t, svc.DB, "owner@example.edu")
	runner := seedUser(t, svc.DB, "runner@example.edu")
	runner.StripeAccountID = "acct_runner"
	if err := svc.DB.Save(runner).Error; err != nil {
		t.Fatalf("save runner: %v", err)
	}
	o := seedOrder(t, svc.DB, &entity.Order{
		UserID: owner.ID, Status: entity.StatusPreparing, DelivererID: &runner.ID,
	})

	out, err := svc.CreateDeliverySession(context.Background(), owner.ID, o.ID)
	if err != nil {
		t.Fatalf("CreateDeliverySession: %v", err)
	}
	if out.SessionID != "cs_test_1" || out.URL == "" {
		t.Errorf("out = %+v, want session cs_test_1 with URL", out)
	}

	if provider.lastIn.AmountCents != DeliveryFeeCents {
		t.Errorf("amount = %d, want %d", provider.lastIn.AmountCents, DeliveryFeeCents)
	}
	if provider.lastIn.PlatformFeeCents != PlatformFeeCents {
		t.Errorf("platform fee = %d, want %d", provider.lastIn.PlatformFeeCents, PlatformFeeCents)
	}
	if provider.lastIn.DestinationAccount != "acct_runner" {
		t.Errorf("destination = %s, want acct_runner", provider.lastIn.DestinationAccount)
	}

	stored, err := repo.GetOrder(o.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if stored.StripeSessionID != "cs_test_1" {
		t.Errorf("stored session = %q, want cs_test_1", stored.StripeSessionID)
	}
}

func TestCreateDeliverySessionIdempotent(t *testing.T) {
	provider := &fakeProvider{}
	svc, _ := newPaymentFixture(t, provider)

	owner := seedUser(t, svc.DB, "owner@example.edu")
	runner := seedUser(t, svc.DB, "runner@example.edu")
	runner.StripeAccountID = "acct_runner"
	if err := svc.DB.Save(runner).Error; err != nil {
		t.Fatalf("save runner: %v", err)
	}
	o := seedOrder(t, svc.DB, &entity.Order{
		UserID: owner.ID, Status: entity.StatusPreparing, DelivererID: &runner.ID,
	})

	first, err := svc.CreateDeliverySession(context.Background(), owner.ID, o.ID)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.CreateDeliverySession(context.Background(), owner.ID, o.ID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if provider.createCalls != 1 {
		t.Errorf("provider called %d times, want 1", provider.createCalls)
	}
	if first.SessionID != second.SessionID || first.URL != second.URL {
		t.Errorf("second call returned %+v, want stored %+v", second, first)
	}
}

func TestCreateDeliverySessionRequiresDeliverer(t *testing.T) {
	provider := &fakeProvider{}
	svc, _ := newPaymentFixture(t, provider)

	owner := seedUser(t, svc.DB, "owner@example.edu")
	o := seedOrder(t, svc.DB, &entity.Order{UserID: owner.ID})

	_, err := svc.CreateDeliverySession(context.Background(), owner.ID, o.ID)
	if !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("err = %v, want ErrIllegalTransition", err)
	}
	if provider.createCalls != 0 {
		t.Errorf("provider called %d times, want 0", provider.createCalls)
	}
}

func TestCreateDeliverySessionRejectsTerminalOrder(t *testing.T) {
	provider := &fakeProvider{}
	svc, repo := newPaymentFixture(t, provider)

	owner := seedUser(t, svc.DB, "owner@example.edu")
	runner := seedUser(t, svc.DB, "runner@example.edu")
	runner.StripeAccountID = "acct_runner"
	if err := svc.DB.Save(runner).Error; err != nil {
		t.Fatalf("save runner: %v", err)
	}
	// Cancelled after claiming; the claimant reference is still set.
	o := seedOrder(t, svc.DB, &entity.Order{
		UserID: owner.ID, Status: entity.StatusCancelled, DelivererID: &runner.ID,
	})

	_, err := svc.CreateDeliverySession(context.Background(), owner.ID, o.ID)
	if !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("err = %v, want ErrIllegalTransition", err)
	}
	if provider.createCalls != 0 {
		t.Errorf("provider called %d times, want 0", provider.createCalls)
	}
	stored, err := repo.GetOrder(o.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if stored.StripeSessionID != "" {
		t.Errorf("stored session = %q, want empty", stored.StripeSessionID)
	}
}

func TestCreateDeliverySessionRequiresPayoutAccount(t *testing.T) {
	provider := &fakeProvider{}
	svc, repo := newPaymentFixture(t, provider)

	owner := seedUser(t, svc.DB, "owner@example.edu")
	runner := seedUser(t, svc.DB, "runner@example.edu") // no payout account
	o := seedOrder(t, svc.DB, &entity.Order{
		UserID: owner.ID, Status: entity.StatusPreparing, DelivererID: &runner.ID,
	})

	_, err := svc.CreateDeliverySession(context.Background(), owner.ID, o.ID)
	if !errors.Is(err, ErrPayoutAccountMissing) {
		t.Errorf("err = %v, want ErrPayoutAccountMissing", err)
	}

	stored, err := repo.GetOrder(o.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if stored.StripeSessionID != "" {
		t.Errorf("stored session = %q, want empty after failed attempt", stored.StripeSessionID)
	}
}

func TestVerifyPaymentBackfillsIntent(t *testing.T) {
	provider := &fakeProvider{paymentStatus: "paid", intentID: "pi_test_9"}
	svc, repo := newPaymentFixture(t, provider)

	owner := seedUser(t, svc.DB, "owner@example.edu")
	runner := seedUser(t, svc.DB, "runner@example.edu")
	o := seedOrder(t, svc.DB, &entity.Order{
		UserID: owner.ID, Status: entity.StatusPreparing, DelivererID: &runner.ID,
		StripeSessionID: "cs_test_1",
	})

	out, err := svc.VerifyPayment(context.Background(), owner.ID, o.ID)
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if out.PaymentStatus != "paid" || out.PaymentIntentID != "pi_test_9" {
		t.Errorf("out = %+v, want paid/pi_test_9", out)
	}

	stored, err := repo.GetOrder(o.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if stored.StripePaymentIntentID != "pi_test_9" {
		t.Errorf("stored intent = %q, want pi_test_9", stored.StripePaymentIntentID)
	}
}

func TestVerifyPaymentWithoutSession(t *testing.T) {
	provider := &fakeProvider{}
	svc, _ := newPaymentFixture(t, provider)

	owner := seedUser(t, svc.DB, "owner@example.edu")
	o := seedOrder(t, svc.DB, &entity.Order{UserID: owner.ID})

	_, err := svc.VerifyPayment(context.Background(), owner.ID, o.ID)
	if !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("err = %v, want ErrIllegalTransition", err)
	}
	if provider.retrieveCalls != 0 {
		t.Errorf("provider called %d times, want 0", provider.retrieveCalls)
	}
}
