package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"action-plan-assistant/internal/model"
	"action-plan-assistant/pkg/log"
	"action-plan-assistant/pkg/response"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and stores the caller scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		sc := payload.Scope()
		ctx = model.SetScopeToContext(ctx, sc)
		ctx = log.WithUserID(ctx, sc.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
