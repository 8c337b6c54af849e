// Package middleware holds the gin middleware shared by the site and admin routes.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// untrackedPrefixes are never recorded as page views.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin",
	"/favicon",
	"/privacy",
	"/healthz",
}

// VisitorTracker records a page view.
type VisitorTracker interface {
	Track(ip, userAgent, path string)
}

// TrackVisitors records page views through t. Asset, admin and health paths are
// skipped, and so are clients sending "DNT: 1".
func TrackVisitors(t VisitorTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !tracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		t.Track(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func tracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}
