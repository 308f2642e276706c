package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recipe-api/internal/application"
)

// CtxUserIDKey is the Gin context key the authenticated user's ID is stored under.
const CtxUserIDKey = "userID"

// TokenAuth resolves the Authorization bearer token to a user and injects
// the user ID into the Gin context. Requests without a valid token are
// rejected with a bodiless 401 before any handler runs.
func TokenAuth(users *application.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := bearerToken(c.GetHeader("Authorization"))
		if key == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		u, err := users.ResolveToken(c.Request.Context(), key)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(CtxUserIDKey, u.ID)
		c.Next()
	}
}

// bearerToken extracts the key from an Authorization header value.
// Both "Token <key>" and "Bearer <key>" schemes are accepted.
func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 {
		return ""
	}
	scheme := strings.ToLower(parts[0])
	if scheme != "token" && scheme != "bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
