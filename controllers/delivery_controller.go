package controllers

import (
	"strconv"

	"github.com/icedmoch/doorsmashorpass/pkg/resp"
	"github.com/icedmoch/doorsmashorpass/services"
	"github.com/icedmoch/doorsmashorpass/utils"

	"github.com/gin-gonic/gin"
)

type DeliveryController struct {
	Svc *services.DeliveryService
}

func NewDeliveryController(svc *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Svc: svc}
}

// GET /deliveries/available
func (ctl *DeliveryController) ListAvailable(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := ctl.Svc.ListAvailable(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /deliveries/mine
func (ctl *DeliveryController) ListMine(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := ctl.Svc.ListMine(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /deliveries/:id/claim
func (ctl *DeliveryController) Claim(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := ctl.Svc.Claim(uid, uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"claimed": true})
}

// POST /deliveries/:id/unclaim
func (ctl *DeliveryController) Unclaim(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := ctl.Svc.Unclaim(uid, uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"unclaimed": true})
}

// POST /deliveries/:id/complete
func (ctl *DeliveryController) Complete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := ctl.Svc.Complete(uid, uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"delivered": true})
}
