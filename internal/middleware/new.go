package middleware

import (
	"pro-todo-backend/config"
	"pro-todo-backend/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	config  *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimit.RequestsPerMin),
		config:  cfg,
	}
}
