package middleware

import (
	"github.com/Kubica-10/contador-historias-api/application/ports/outbound"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"time"
)

const (
	RequestIDHeader     = "X-Request-Id"
	ContextRequestIDKey = "requestID"
)

func RequestLoggerMiddleware(logger outbound.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		fields := map[string]any{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			logger.ErrorWithFields(c.Errors.Last().Err, "Request failed", fields)
			return
		}
		logger.InfoWithFields("Request handled", fields)
	}
}
