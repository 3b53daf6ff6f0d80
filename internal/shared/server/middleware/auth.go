package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/server/respond"
)

// Auth enforces the shared access key on API routes when one is configured.
// The key arrives in the X-Access-Key header, or in a `key` query parameter
// for plain browser downloads that cannot set headers.
func Auth(accessKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if accessKey == "" || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if !strings.HasPrefix(path, "/api/v1/") || path == "/api/v1/health" {
			c.Next()
			return
		}

		key := strings.TrimSpace(c.GetHeader("X-Access-Key"))
		if key == "" {
			key = strings.TrimSpace(c.Query("key"))
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(accessKey)) != 1 {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid access key", nil)
			return
		}

		c.Next()
	}
}
