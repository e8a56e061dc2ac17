package middleware

import (
	"net/http"
	"strings"

	"docportal/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is where the authenticated email is stored on the request
// context.
const ContextEmailKey = "email"

// JWTAuthMiddleware verifies the Bearer token and stores the authenticated
// email on the context. A missing token yields 401; a token that fails
// verification yields 403.
func JWTAuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := jwtManager.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// AuthenticatedEmail returns the email stored by JWTAuthMiddleware.
func AuthenticatedEmail(c *gin.Context) string {
	email, _ := c.Get(ContextEmailKey)
	s, _ := email.(string)
	return s
}
