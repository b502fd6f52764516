package middleware

import (
	"net/http"
	"strings"

	"career-platform-backend/internal/delivery/http/response"
	"career-platform-backend/internal/domain"
	"career-platform-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the session token and loads the caller's identity
// into the context. The token comes from the Authorization header or, for
// browser clients that keep it in a cookie, from auth_token.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// 1. Try to get token from Header
		if header := c.GetHeader("Authorization"); header != "" {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserEmail), claims.Email)

		c.Next()
	}
}
