package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// contextUserIDKey is the gin context key holding the authenticated
// identity id
const contextUserIDKey = "auth.user_id"

// RequireAuth rejects requests without a valid bearer token with 401 and
// stores the authenticated identity id in the request context.
func RequireAuth(tokens *TokenManager, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			log.Warn().Str("path", c.Request.URL.Path).Msg("Missing Authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := tokens.Validate(token)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Invalid bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated identity id set by RequireAuth, or ""
func UserID(c *gin.Context) string {
	id, _ := c.Get(contextUserIDKey)
	s, _ := id.(string)
	return s
}
