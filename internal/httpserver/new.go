package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	appConfig "pro-todo-backend/config"
	"pro-todo-backend/internal/sync"
	taskRepo "pro-todo-backend/internal/task/repository"
	userRepo "pro-todo-backend/internal/user/repository"
	"pro-todo-backend/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	config      *appConfig.Config

	// Stores and collaborators, shared across domains.
	taskRepository taskRepo.Repository
	userRepository userRepo.Repository
	hub            *sync.Hub
	location       *time.Location
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *appConfig.Config

	TaskRepository taskRepo.Repository
	UserRepository userRepo.Repository
	Hub            *sync.Hub
	Location       *time.Location
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		config:         cfg.AppConfig,
		taskRepository: cfg.TaskRepository,
		userRepository: cfg.UserRepository,
		hub:            cfg.Hub,
		location:       cfg.Location,
	}
	if srv.location == nil {
		srv.location = time.UTC
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("app config is required")
	}
	if srv.taskRepository == nil {
		return errors.New("task repository is required")
	}
	if srv.userRepository == nil {
		return errors.New("user repository is required")
	}
	if srv.hub == nil {
		return errors.New("sync hub is required")
	}
	return nil
}
