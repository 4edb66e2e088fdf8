package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"luminaria-skill/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or mints one, echoes it and
// stores it in the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
