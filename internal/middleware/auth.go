package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminCookie holds the admin session token.
const AdminCookie = "admin_token"

// TokenVerifier checks an admin session token.
type TokenVerifier interface {
	Verify(token string) bool
}

// RequireAdmin rejects requests without a valid admin cookie. Pages redirect to
// the login form; JSON endpoints under /admin/api get a 401.
func RequireAdmin(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminCookie)
		if err == nil && v.Verify(token) {
			c.Next()
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/admin/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "UNAUTHORIZED", "message": "admin login required"},
			})
			return
		}
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
	}
}
