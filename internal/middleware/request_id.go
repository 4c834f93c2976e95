package middleware

import (
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	RequestIDKey    = "requestID"
	requestIDHeader = "X-Request-Id"
	requestIDLength = 9
)

// RequestID tags every request with a short id, echoed in the response header
// and available to handlers for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			generated, err := gonanoid.New(requestIDLength)
			if err == nil {
				id = generated
			}
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "" when absent.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
