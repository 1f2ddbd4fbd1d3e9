package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"pro-todo-backend/internal/user"
	"pro-todo-backend/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, user.ErrEmptyName):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
