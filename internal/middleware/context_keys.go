package middleware

import "github.com/gin-gonic/gin"

// userIDKey is where the auth middleware stores the authenticated user's ID.
const userIDKey = contextKey("userID")

// GetUserIDFromContext returns the authenticated user ID, looking first in the
// Gin context and falling back to the request context the middleware populated.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok
	}
	if v := c.Request.Context().Value(userIDKey); v != nil {
		userID, ok := v.(string)
		return userID, ok
	}
	return "", false
}
