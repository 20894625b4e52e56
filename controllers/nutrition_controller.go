package controllers

import (
	"time"

	"github.com/icedmoch/doorsmashorpass/pkg/resp"
	"github.com/icedmoch/doorsmashorpass/services"
	"github.com/icedmoch/doorsmashorpass/utils"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	Svc *services.NutritionService
}

func NewNutritionController(svc *services.NutritionService) *NutritionController {
	return &NutritionController{Svc: svc}
}

// GET /nutrition/goals
func (ctl *NutritionController) Goals(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	goals, err := ctl.Svc.Goals(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, goals)
}

// GET /nutrition/summary?date=2026-09-01
func (ctl *NutritionController) DailySummary(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			resp.BadRequest(c, "invalid date, want YYYY-MM-DD")
			return
		}
		date = parsed
	}

	summary, err := ctl.Svc.DailySummary(uid, date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, summary)
}
