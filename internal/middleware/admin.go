package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lacantina/turnos-api/internal/models"
)

// RequireAdmin reads the stored role instead of trusting the token claim,
// so a revoked admin loses access as soon as the profile row changes.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(ContextUserID).(string)

		var profile models.Profile
		if err := db.Select("role").First(&profile, "id = ?", userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "profile_not_found"})
			return
		}

		if profile.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_only"})
			return
		}

		c.Next()
	}
}
