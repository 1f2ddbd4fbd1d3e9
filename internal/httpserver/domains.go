package httpserver

import (
	"context"

	statsHTTP "pro-todo-backend/internal/stats/delivery/http"
	statsUC "pro-todo-backend/internal/stats/usecase"
	taskHTTP "pro-todo-backend/internal/task/delivery/http"
	taskUC "pro-todo-backend/internal/task/usecase"
	userHTTP "pro-todo-backend/internal/user/delivery/http"
	userUC "pro-todo-backend/internal/user/usecase"
	"pro-todo-backend/pkg/quickparse"
	"pro-todo-backend/pkg/taskquery"
)

// registerDomainRoutes wires every domain under /api/v1.
//
// Pattern per domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// Task domain
	tuc := taskUC.New(
		srv.l,
		srv.taskRepository,
		quickparse.New(),
		taskquery.New(),
		srv.hub,
		taskUC.Settings{
			Location:               srv.location,
			DefaultDueHour:         srv.config.App.DefaultDueHour,
			DefaultReminderMinutes: srv.config.App.DefaultReminderMinutes,
		},
	)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tuc))
	srv.l.Infof(ctx, "Task domain registered")

	// User domain
	uuc := userUC.New(srv.l, srv.userRepository, srv.taskRepository)
	userHTTP.RegisterRoutes(api, userHTTP.New(srv.l, uuc))
	srv.l.Infof(ctx, "User domain registered")

	// Stats domain
	suc := statsUC.New(srv.l, srv.taskRepository)
	statsHTTP.RegisterRoutes(api, statsHTTP.New(srv.l, suc))
	srv.l.Infof(ctx, "Stats domain registered")

	return nil
}
