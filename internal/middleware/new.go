package middleware

import (
	"action-plan-assistant/config"
	"action-plan-assistant/pkg/log"
	"action-plan-assistant/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, rateCfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(rateCfg),
	}
}
