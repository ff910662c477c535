package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"classtrack/internal/shared/contextutil"
)

// RequestID assigns each request an id (honoring an inbound X-Request-ID)
// and propagates it through the standard context for logging and events.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}

		c.Set("request_id", rid)

		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", rid)
		c.Next()
	}
}
