package middleware

import (
	"net/http"

	"zyberian-site/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAdmin must be the first handler of every /api/admin route: nothing
// after it runs unless the session belongs to an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

func IsAdmin(c *gin.Context) bool {
	sess := sessions.Default(c)
	isAdmin, _ := sess.Get(session.KeyIsAdmin).(bool)
	return isAdmin && CurrentUserID(c) != ""
}

// CurrentUserID returns "" for anonymous requests.
func CurrentUserID(c *gin.Context) string {
	sess := sessions.Default(c)
	uid, _ := sess.Get(session.KeyUserID).(string)
	return uid
}
