package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionIDKey = "sessionId"

// Session stores the caller's session ID from the X-Session-Id header in the
// request context. There is no authentication model: the session ID only
// scopes responses and evidence to one assessment run. Paths that create
// sessions or serve the catalog are exempt.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		if id := strings.TrimSpace(c.GetHeader("X-Session-Id")); id != "" {
			c.Set(sessionIDKey, id)
		}
		c.Next()
	}
}

// SessionIDFromContext fetches the session ID set by the Session middleware.
func SessionIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(sessionIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
