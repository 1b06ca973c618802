package middleware

import (
	"net/http"
	"strings"

	"travel-admin/services"
	"travel-admin/utils"

	"github.com/gin-gonic/gin"
)

// RequireSession guards protected routes. A request must carry a bearer token
// that matches an active session in the local store; everything else gets 401.
func RequireSession(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		session, err := sessions.Current(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		sessions.Touch(token)
		c.Set("session", session)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
