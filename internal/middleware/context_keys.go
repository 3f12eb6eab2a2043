package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated user's ID in the request context.
// The custom type prevents collisions with other context values.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID set by
// AuthMiddleware. The boolean reports whether a user is authenticated.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}

	// Fall back to the gin context for handlers invoked outside the
	// standard middleware chain, e.g. in tests.
	if v, exists := c.Get(string(userIDKey)); exists {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}

	return "", false
}
