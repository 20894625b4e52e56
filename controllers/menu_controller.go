package controllers

import (
	"strconv"
	"time"

	"github.com/icedmoch/doorsmashorpass/pkg/resp"
	"github.com/icedmoch/doorsmashorpass/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /menu?date=2026-09-01&mealType=Lunch&location=North%20Commons
func (ctl *MenuController) List(c *gin.Context) {
	var date time.Time
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			resp.BadRequest(c, "invalid date, want YYYY-MM-DD")
			return
		}
		date = parsed
	}

	items, err := ctl.Svc.Browse(date, c.Query("mealType"), c.Query("location"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/:id
func (ctl *MenuController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := ctl.Svc.Detail(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /menu/locations
func (ctl *MenuController) Locations(c *gin.Context) {
	locations, err := ctl.Svc.Locations()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, locations)
}
