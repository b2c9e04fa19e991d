package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"action-plan-assistant/pkg/log"
)

// RequestIDHeader is read from and echoed to every request.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches a request id to the context, reusing the client's when present.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
