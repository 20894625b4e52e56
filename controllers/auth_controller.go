package controllers

import (
	"github.com/icedmoch/doorsmashorpass/pkg/resp"
	"github.com/icedmoch/doorsmashorpass/services"
	"github.com/icedmoch/doorsmashorpass/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

type registerReq struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Svc.Register(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ctl.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

func (ctl *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	user, err := ctl.Svc.GetProfile(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}

type updateMeReq struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`

	Age           *int     `json:"age"`
	Sex           *string  `json:"sex" binding:"omitempty,oneof=male female other"`
	HeightInches  *float64 `json:"heightInches"`
	WeightLbs     *float64 `json:"weightLbs"`
	ActivityLevel *int     `json:"activityLevel"`

	GoalCalories *float64 `json:"goalCalories"`
	GoalProtein  *float64 `json:"goalProtein"`
	GoalCarbs    *float64 `json:"goalCarbs"`
	GoalFat      *float64 `json:"goalFat"`

	DietaryPreferences *string `json:"dietaryPreferences"`
	GoalDescription    *string `json:"goalDescription"`
}

func (ctl *AuthController) UpdateMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req updateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Svc.UpdateProfile(uid, &services.ProfileUpdateIn{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Age:                req.Age,
		Sex:                req.Sex,
		HeightInches:       req.HeightInches,
		WeightLbs:          req.WeightLbs,
		ActivityLevel:      req.ActivityLevel,
		GoalCalories:       req.GoalCalories,
		GoalProtein:        req.GoalProtein,
		GoalCarbs:          req.GoalCarbs,
		GoalFat:            req.GoalFat,
		DietaryPreferences: req.DietaryPreferences,
		GoalDescription:    req.GoalDescription,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}

type connectPayoutReq struct {
	AccountID string `json:"accountId" binding:"required"`
}

// ConnectPayout stores the Stripe connected-account reference after the
// deliverer finishes onboarding.
func (ctl *AuthController) ConnectPayout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req connectPayoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Svc.ConnectPayoutAccount(uid, req.AccountID); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"connected": true})
}
