package middleware

import (
	"github.com/gin-gonic/gin"
)

// UserIDKey is the context key under which the caller identity is stored.
const UserIDKey = "user_id"

// CallerIdentity copies the externally supplied user identity into the
// request context. Authentication happens upstream of this service; handlers
// only need the id for ownership-scoped queries.
func CallerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader("X-User-ID"); id != "" {
			c.Set(UserIDKey, id)
		}
		c.Next()
	}
}
