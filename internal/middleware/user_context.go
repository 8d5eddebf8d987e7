package middleware

import (
	"zyberian-site/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// InjectUser tags the request logger with the session's user id. It only
// reads the session, never the users table.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := c.Request.Cookie(SessionCookie); err == nil {
			if uid := CurrentUserID(c); uid != "" {
				l := logger.FromContext(c.Request.Context()).GetChildLogger()
				l.UpdateContext(func(ctx zerolog.Context) zerolog.Context {
					return ctx.Str("user_id", uid)
				})
				c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))
			}
		}

		c.Next()
	}
}
