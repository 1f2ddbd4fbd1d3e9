package http

import (
	"github.com/gin-gonic/gin"

	"pro-todo-backend/pkg/response"
)

// Create godoc
// @Summary     Create a user
// @Description Creates a user with a readable slug id derived from the name.
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       body body createReq true "User data"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newUserResp(created))
}

// List godoc
// @Summary     List users
// @Description Returns every user, newest first.
// @Tags        User
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(users))
}

// Detail godoc
// @Summary     Get a user
// @Description Returns a single user by ID.
// @Tags        User
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {object} userResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	u, err := h.uc.Detail(ctx, c.Param("userId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newUserResp(u))
}

// Delete godoc
// @Summary     Delete a user
// @Description Removes a user and every task they own.
// @Tags        User
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{userId} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("userId")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
