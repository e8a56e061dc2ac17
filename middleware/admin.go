package middleware

import (
	"net/http"

	"docportal/services/user"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAccessMiddleware gates privileged routes on the admin role of the
// authenticated user. It is the single place the capability check lives;
// handlers behind it never re-check. Must run after JWTAuthMiddleware.
func AdminAccessMiddleware(userService user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := AuthenticatedEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		isAdmin, err := userService.IsAdmin(email)
		if err != nil {
			utils.GetLogger().Error("admin check failed",
				zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify permissions"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}
