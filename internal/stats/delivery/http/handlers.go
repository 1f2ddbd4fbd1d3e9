package http

import (
	"github.com/gin-gonic/gin"

	"pro-todo-backend/internal/stats"
	pkgLog "pro-todo-backend/pkg/log"
	"pro-todo-backend/pkg/response"
)

type handler struct {
	l  pkgLog.Logger
	uc stats.UseCase
}

// New creates a new HTTP handler for the stats panel.
func New(l pkgLog.Logger, uc stats.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// RegisterRoutes maps the stats route.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/users/:userId/stats", h.Summary)
}

// Summary godoc
// @Summary     User statistics
// @Description Returns points, today's completion counters and the 14-day completion history.
// @Tags        Stats
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {object} stats.Summary
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/stats [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.uc.Summary(ctx, c.Param("userId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, summary)
}
