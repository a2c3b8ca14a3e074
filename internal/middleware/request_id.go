package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"game-manager/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates the inbound X-Request-ID, or a fresh UUID, to the
// response header and the request context.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
