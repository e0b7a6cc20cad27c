package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"justeat-backend/pkg/resp"
	"justeat-backend/services"
)

// respondErr maps the service error taxonomy onto HTTP codes in one place.
// Storage failures deliberately surface as a generic retry message; the
// detail already went to the log where it happened.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, "your cart is empty")
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrStorage):
		resp.ServerError(c, "something went wrong, please try again")
	default:
		resp.ServerError(c, err.Error())
	}
}
