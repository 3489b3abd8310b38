package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminAuth gates admin routes behind the shared bearer token. An empty
// configured token rejects everything rather than matching an empty header.
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token == "" || header != "Bearer "+token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
