package middleware

import (
	"time"

	"zyberian-site/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	TraceIDHeader = "X-Trace-ID"
	// имя cookie с подписанным id сессии
	SessionCookie = "sid"
)

// RequestLogger attaches a trace-id scoped logger to the request context and
// writes one access line per request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(ctx zerolog.Context) zerolog.Context {
			return ctx.Str("trace_id", traceID)
		})
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))
		c.Header(TraceIDHeader, traceID)

		c.Next()

		reqLog := logger.FromContext(c.Request.Context())
		reqLog.Info().
			Str("method", c.Request.Method).
			Str("uri", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Int("size", c.Writer.Size()).
			Str("ip", c.ClientIP()).
			Send()
	}
}
