package controllers

import (
	"errors"

	"github.com/icedmoch/doorsmashorpass/pkg/resp"
	"github.com/icedmoch/doorsmashorpass/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrIllegalTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrPayoutAccountMissing):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
