package auth

import (
	"net/http"

	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireRole lets through only users whose stored role is at least required.
// The role is read from the database so demotions apply to live tokens.
// It must be used AFTER AuthMiddleware.
func RequireRole(db *gorm.DB, required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := UserID(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		var user models.User
		if err := db.WithContext(c.Request.Context()).First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authenticated user not found"})
			return
		}

		if !user.Role.AtLeast(required) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": string(required) + " access required"})
			return
		}

		c.Set(RoleKey, string(user.Role))
		c.Next()
	}
}
