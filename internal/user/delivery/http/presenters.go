package http

import (
	"time"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/user"
)

// --- Request DTOs ---

type createReq struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{Name: r.Name}
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

type listResp struct {
	Users []userResp `json:"users"`
}

func (h *handler) newListResp(users []model.User) listResp {
	out := make([]userResp, len(users))
	for i, u := range users {
		out[i] = newUserResp(u)
	}
	return listResp{Users: out}
}
