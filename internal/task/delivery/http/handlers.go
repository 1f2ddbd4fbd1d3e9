package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"pro-todo-backend/internal/task"
	"pro-todo-backend/pkg/response"
)

// QuickAdd godoc
// @Summary     Quick-capture a task
// @Description Parses one free-text line (tags, project, priority, date, recurrence) into a task.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       userId path string   true "User ID"
// @Param       body   body quickReq true "Capture text"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks/quick [POST]
func (h *handler) QuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.QuickAdd(ctx, c.Param("userId"), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.QuickAdd: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(created))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task from an explicit draft.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       userId path string    true "User ID"
// @Param       body   body createReq true "Task draft"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, c.Param("userId"), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(created))
}

// List godoc
// @Summary     List tasks
// @Description Returns the user's tasks, newest first. An optional q parameter filters them through the saved-query language (free text, tag:, project:, priority:, due:today/overdue/none, completed:, AND/OR).
// @Tags        Task
// @Produce     json
// @Param       userId path  string true  "User ID"
// @Param       q      query string false "Saved-query filter"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var input task.ListInput
	if q, ok := c.GetQuery("q"); ok {
		input.Query = &q
	}

	tasks, err := h.uc.List(ctx, c.Param("userId"), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, listResp{Tasks: newTaskResps(tasks)})
}

// Detail godoc
// @Summary     Get a task
// @Description Returns a single task by ID.
// @Tags        Task
// @Produce     json
// @Param       userId path string true "User ID"
// @Param       id     path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Detail(ctx, c.Param("userId"), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Merges a partial patch into a task. Absent fields are untouched; clearDue/clearRepeat remove the optional fields.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       userId path string    true "User ID"
// @Param       id     path string    true "Task ID"
// @Param       body   body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(ctx, c.Param("userId"), c.Param("id"), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task.
// @Tags        Task
// @Produce     json
// @Param       userId path string true "User ID"
// @Param       id     path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("userId"), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Flips the completion state. Completing a recurring task also returns the spawned next occurrence.
// @Tags        Task
// @Produce     json
// @Param       userId path string true "User ID"
// @Param       id     path string true "Task ID"
// @Success     200 {object} toggleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ToggleCompletion(ctx, c.Param("userId"), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCompletion: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newToggleResp(out))
}

// Reschedule godoc
// @Summary     Reschedule a task
// @Description Moves the due date to another calendar day (time-of-day preserved) or snoozes it by snoozeMinutes.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       userId path string        true "User ID"
// @Param       id     path string        true "Task ID"
// @Param       body   body rescheduleReq true "Target day or snooze"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks/{id}/reschedule [PUT]
func (h *handler) Reschedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRescheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Reschedule(ctx, c.Param("userId"), c.Param("id"), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Reschedule: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// AddSubtask godoc
// @Summary     Add a subtask
// @Description Appends a new incomplete subtask to a task.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       userId path string     true "User ID"
// @Param       id     path string     true "Task ID"
// @Param       body   body subtaskReq true "Subtask title"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks/{id}/subtasks [POST]
func (h *handler) AddSubtask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubtaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.AddSubtask(ctx, c.Param("userId"), c.Param("id"), req.Title)
	if err != nil {
		h.l.Errorf(ctx, "uc.AddSubtask: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// ToggleSubtask godoc
// @Summary     Toggle a subtask
// @Description Flips one subtask's done flag.
// @Tags        Task
// @Produce     json
// @Param       userId    path string true "User ID"
// @Param       id        path string true "Task ID"
// @Param       subtaskId path string true "Subtask ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks/{id}/subtasks/{subtaskId}/toggle [PUT]
func (h *handler) ToggleSubtask(c *gin.Context) {
	ctx := c.Request.Context()

	updated, err := h.uc.ToggleSubtask(ctx, c.Param("userId"), c.Param("id"), c.Param("subtaskId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleSubtask: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// RemoveSubtask godoc
// @Summary     Remove a subtask
// @Description Deletes one subtask from a task.
// @Tags        Task
// @Produce     json
// @Param       userId    path string true "User ID"
// @Param       id        path string true "Task ID"
// @Param       subtaskId path string true "Subtask ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks/{id}/subtasks/{subtaskId} [DELETE]
func (h *handler) RemoveSubtask(c *gin.Context) {
	ctx := c.Request.Context()

	updated, err := h.uc.RemoveSubtask(ctx, c.Param("userId"), c.Param("id"), c.Param("subtaskId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveSubtask: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// ExportICS godoc
// @Summary     Export a task as iCalendar
// @Description Returns a text/calendar VEVENT for the task, importable by any calendar app.
// @Tags        Task
// @Produce     plain
// @Param       userId path string true "User ID"
// @Param       id     path string true "Task ID"
// @Success     200 {string} string "iCalendar payload"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks/{id}/ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	ics, err := h.uc.ExportICS(ctx, c.Param("userId"), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		h.mapError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".ics"))
	c.Data(200, "text/calendar; charset=utf-8", []byte(ics))
}

// Export godoc
// @Summary     Export the full state
// @Description Returns every task plus projects, points and completion history as one JSON document.
// @Tags        Task
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {object} exportResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := h.uc.Export(ctx, c.Param("userId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newExportResp(state))
}

// Import godoc
// @Summary     Import an exported state
// @Description Recreates tasks from a previously exported state. Identities and store timestamps are reassigned.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       userId path string    true "User ID"
// @Param       body   body importReq true "Exported state"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId}/tasks/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Import(ctx, c.Param("userId"), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, importResp{Imported: out.Imported})
}
