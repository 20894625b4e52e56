package services

import (
	"errors"
	"testing"
	"time"

	"github.com/icedmoch/doorsmashorpass/repository"
)

func newAuthFixture(t *testing.T) *AuthService {
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthFixture(t)

	u, err := svc.Register("Student@Example.EDU", "hunter22", "Sam", "Lee")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Email != "student@example.edu" {
		t.Errorf("email = %s, want lowercased", u.Email)
	}
	if u.Role != "student" {
		t.Errorf("role = %s, want student", u.Role)
	}
	if u.Password == "hunter22" {
		t.Error("password stored in plain text")
	}

	if _, err := svc.Register("student@example.edu", "other", "S", "L"); err == nil {
		t.Error("duplicate Register succeeded, want error")
	}

	token, logged, err := svc.Login("student@example.edu", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" || logged.ID != u.ID {
		t.Errorf("Login returned token %q user %d, want token for user %d", token, logged.ID, u.ID)
	}

	if _, _, err := svc.Login("student@example.edu", "wrong"); err == nil {
		t.Error("Login with wrong password succeeded, want error")
	}
}

func TestUpdateProfileRecomputesEnergy(t *testing.T) {
	svc := newAuthFixture(t)
	u, err := svc.Register("student@example.edu", "hunter22", "Sam", "Lee")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Partial metrics leave the cached numbers unset.
	got, err := svc.UpdateProfile(u.ID, &ProfileUpdateIn{WeightLbs: floatPtr(150)})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.BMR != nil || got.TDEE != nil {
		t.Errorf("BMR/TDEE cached from partial metrics: %v/%v", got.BMR, got.TDEE)
	}

	sex := "Male"
	got, err = svc.UpdateProfile(u.ID, &ProfileUpdateIn{
		Age: intPtr(25), Sex: &sex, HeightInches: floatPtr(70), ActivityLevel: intPtr(3),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.Sex != "male" {
		t.Errorf("sex = %q, want normalized lowercase", got.Sex)
	}
	if got.BMR == nil || *got.BMR != 1671.64 {
		t.Errorf("BMR = %v, want 1671.64", got.BMR)
	}
	if got.TDEE == nil || *got.TDEE != 2591.04 {
		t.Errorf("TDEE = %v, want 2591.04", got.TDEE)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	svc := newAuthFixture(t)
	u, err := svc.Register("student@example.edu", "hunter22", "Sam", "Lee")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	cases := []ProfileUpdateIn{
		{Age: intPtr(0)},
		{Age: intPtr(-3)},
		{HeightInches: floatPtr(0)},
		{WeightLbs: floatPtr(-1)},
		{ActivityLevel: intPtr(6)},
		{ActivityLevel: intPtr(0)},
	}
	for _, in := range cases {
		if _, err := svc.UpdateProfile(u.ID, &in); !errors.Is(err, ErrValidation) {
			t.Errorf("UpdateProfile(%+v) = %v, want ErrValidation", in, err)
		}
	}
}

func TestConnectPayoutAccount(t *testing.T) {
	svc := newAuthFixture(t)
	u, err := svc.Register("runner@example.edu", "hunter22", "Ria", "Ng")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.ConnectPayoutAccount(u.ID, "  "); !errors.Is(err, ErrValidation) {
		t.Errorf("blank account = %v, want ErrValidation", err)
	}
	if err := svc.ConnectPayoutAccount(u.ID, "acct_123"); err != nil {
		t.Fatalf("ConnectPayoutAccount: %v", err)
	}

	stored, err := svc.GetProfile(u.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if stored.StripeAccountID != "acct_123" {
		t.Errorf("stored account = %q, want acct_123", stored.StripeAccountID)
	}
}
