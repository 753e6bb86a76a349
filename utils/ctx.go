package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the authenticated user's ID, or 0 when the request
// never passed the auth middleware. The middleware always stores a uint.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentRole returns the authenticated user's role, or "" when absent.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
