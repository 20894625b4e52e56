package controllers

import (
	"strconv"

	"github.com/icedmoch/doorsmashorpass/pkg/resp"
	"github.com/icedmoch/doorsmashorpass/services"
	"github.com/icedmoch/doorsmashorpass/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	cart, totals, err := ctl.Svc.Get(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "totals": totals})
}

// POST /cart/items
func (ctl *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Svc.Add(uid, &req); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"added": true})
}

type updateQtyReq struct {
	Quantity int `json:"quantity"`
}

// PATCH /cart/items/:id
func (ctl *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Svc.UpdateQty(uid, uint(id), req.Quantity); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/items/:id
func (ctl *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := ctl.Svc.RemoveItem(uid, uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := ctl.Svc.Clear(uid); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
