package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID back to the client.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID so log lines and the response
// envelope can be correlated. An incoming X-Request-ID is kept so IDs stay
// stable across a proxy chain.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("RequestID", id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
