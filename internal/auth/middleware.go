package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CodeUserAuthError is the single external code for every identity failure:
// missing header, malformed token, bad signature, expired. One code, so
// callers cannot probe which step failed.
const CodeUserAuthError = "middleware.auth.1"

const contextKeyUserID = "user_id"

// UserIDFromContext returns the user ID set by RequireUser. Empty if not set.
func UserIDFromContext(c *gin.Context) string {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return ""
	}
	id, ok := v.(string)
	if !ok {
		return ""
	}
	return id
}

// RequireUser returns a middleware that verifies the Authorization bearer
// token and sets the current user ID for the handler. Handlers read it once
// and pass it explicitly into use cases.
func RequireUser(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			abortUnauthorized(c)
			return
		}
		userID, err := v.Verify(strings.TrimPrefix(header, prefix))
		if err != nil {
			abortUnauthorized(c)
			return
		}
		SetUserID(c, userID)
		c.Next()
	}
}

// SetUserID stores the verified user ID on the request context. Exposed for
// handler tests that bypass token verification.
func SetUserID(c *gin.Context, id string) {
	c.Set(contextKeyUserID, id)
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"code": CodeUserAuthError},
	})
}
