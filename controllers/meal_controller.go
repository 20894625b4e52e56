package controllers

import (
	"strconv"
	"time"

	"github.com/icedmoch/doorsmashorpass/pkg/resp"
	"github.com/icedmoch/doorsmashorpass/services"
	"github.com/icedmoch/doorsmashorpass/utils"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

// POST /meals
func (ctl *MealController) Log(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.LogMealIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	entry, err := ctl.Svc.Log(uid, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, entry)
}

// POST /orders/:id/meals — log a delivered order's items as meal entries.
func (ctl *MealController) LogOrder(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req services.LogOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	entries, err := ctl.Svc.LogOrderItems(uid, uint(id), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, entries)
}

// GET /meals?date=2026-09-01
func (ctl *MealController) ListByDate(c *gin.Context) {
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

	grouped, err := ctl.Svc.ListByDate(uid, date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, grouped)
}

type updateServingsReq struct {
	Servings float64 `json:"servings" binding:"required"`
}

// PATCH /meals/:id
func (ctl *MealController) UpdateServings(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req updateServingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Svc.UpdateServings(uid, uint(id), req.Servings); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /meals/:id
func (ctl *MealController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := ctl.Svc.Delete(uid, uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
