package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/icedmoch/doorsmashorpass/entity"
	"github.com/icedmoch/doorsmashorpass/repository"
	"github.com/icedmoch/doorsmashorpass/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles login/register and profile maintenance.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *AuthService) Register(email, password, firstName, lastName string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Role:      "student",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// ProfileUpdateIn carries the settable profile fields. Nil pointers leave a
// field untouched.
type ProfileUpdateIn struct {
	FirstName *string
	LastName  *string

	Age           *int
	Sex           *string
	HeightInches  *float64
	WeightLbs     *float64
	ActivityLevel *int

	GoalCalories *float64
	GoalProtein  *float64
	GoalCarbs    *float64
	GoalFat      *float64

	DietaryPreferences *string
	GoalDescription    *string
}

// UpdateProfile validates metrics, applies the changes, then recomputes the
// cached BMR/TDEE when the profile holds a complete metric set.
func (s *AuthService) UpdateProfile(userID uint, in *ProfileUpdateIn) (*entity.User, error) {
	if in.Age != nil && *in.Age <= 0 {
		return nil, fmt.Errorf("%w: age must be positive", ErrValidation)
	}
	if in.HeightInches != nil && *in.HeightInches <= 0 {
		return nil, fmt.Errorf("%w: height must be positive", ErrValidation)
	}
	if in.WeightLbs != nil && *in.WeightLbs <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", ErrValidation)
	}
	if in.ActivityLevel != nil && !utils.ValidActivityLevel(*in.ActivityLevel) {
		return nil, fmt.Errorf("%w: activity level must be 1-5", ErrValidation)
	}

	updates := map[string]any{}
	set := func(col string, v any) { updates[col] = v }

	if in.FirstName != nil {
		set("first_name", strings.TrimSpace(*in.FirstName))
	}
	if in.LastName != nil {
		set("last_name", strings.TrimSpace(*in.LastName))
	}
	if in.Age != nil {
		set("age", *in.Age)
	}
	if in.Sex != nil {
		set("sex", strings.ToLower(strings.TrimSpace(*in.Sex)))
	}
	if in.HeightInches != nil {
		set("height_inches", *in.HeightInches)
	}
	if in.WeightLbs != nil {
		set("weight_lbs", *in.WeightLbs)
	}
	if in.ActivityLevel != nil {
		set("activity_level", *in.ActivityLevel)
	}
	if in.GoalCalories != nil {
		set("goal_calories", *in.GoalCalories)
	}
	if in.GoalProtein != nil {
		set("goal_protein", *in.GoalProtein)
	}
	if in.GoalCarbs != nil {
		set("goal_carbs", *in.GoalCarbs)
	}
	if in.GoalFat != nil {
		set("goal_fat", *in.GoalFat)
	}
	if in.DietaryPreferences != nil {
		set("dietary_preferences", *in.DietaryPreferences)
	}
	if in.GoalDescription != nil {
		set("goal_description", *in.GoalDescription)
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(userID, updates); err != nil {
			return nil, err
		}
	}

	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	// Cache energy numbers once the metric set is complete.
	if u.Age != nil && u.HeightInches != nil && u.WeightLbs != nil &&
		u.Sex != "" && u.ActivityLevel != nil {
		bmr := utils.BMR(*u.HeightInches, *u.WeightLbs, float64(*u.Age), u.Sex)
		tdee := utils.TDEE(bmr, *u.ActivityLevel)
		if err := s.userRepo.Update(userID, map[string]any{"bmr": bmr, "tdee": tdee}); err != nil {
			return nil, err
		}
		u.BMR = &bmr
		u.TDEE = &tdee
	}

	return u, nil
}

// ConnectPayoutAccount stores the deliverer's Stripe account reference after
// Connect onboarding.
func (s *AuthService) ConnectPayoutAccount(userID uint, accountID string) error {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return fmt.Errorf("%w: account id is required", ErrValidation)
	}
	return s.userRepo.SetStripeAccount(userID, accountID)
}
