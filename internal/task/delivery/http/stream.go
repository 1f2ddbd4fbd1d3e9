package http

import (
	"io"

	"github.com/gin-gonic/gin"
)

// Stream godoc
// @Summary     Live task stream
// @Description Server-sent events feed of full task-list snapshots. The current list is sent immediately; every later mutation pushes a fresh snapshot.
// @Tags        Task
// @Produce     text/event-stream
// @Param       userId path string true "User ID"
// @Success     200 {string} string "event stream"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	sub, initial, err := h.uc.Subscribe(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Subscribe: %v", err)
		h.mapError(c, err)
		return
	}
	defer sub.Close()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.SSEvent("tasks", listResp{Tasks: newTaskResps(initial)})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case tasks, ok := <-sub.C:
			if !ok {
				return false
			}
			c.SSEvent("tasks", listResp{Tasks: newTaskResps(tasks)})
			return true
		}
	})
}
