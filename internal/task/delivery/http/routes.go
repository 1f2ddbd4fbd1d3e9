package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. All task
// routes are scoped to their owner.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/users/:userId/tasks")
	{
		tasks.POST("", h.Create)
		tasks.POST("/quick", h.QuickAdd)
		tasks.GET("", h.List)
		tasks.GET("/stream", h.Stream)
		tasks.GET("/export", h.Export)
		tasks.POST("/import", h.Import)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/toggle", h.Toggle)
		tasks.PUT("/:id/reschedule", h.Reschedule)
		tasks.GET("/:id/ics", h.ExportICS)
		tasks.POST("/:id/subtasks", h.AddSubtask)
		tasks.PUT("/:id/subtasks/:subtaskId/toggle", h.ToggleSubtask)
		tasks.DELETE("/:id/subtasks/:subtaskId", h.RemoveSubtask)
	}
}
