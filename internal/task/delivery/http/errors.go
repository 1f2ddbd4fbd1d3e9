package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"pro-todo-backend/internal/task"
	"pro-todo-backend/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrNotFound), errors.Is(err, task.ErrSubtaskNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrNothingToUpdate):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
