package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
)

// AdminMiddleware guards operational trigger endpoints with a shared token.
// The comparison is constant-time.
func AdminMiddleware(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminToken == "" {
			c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeAdminTokenInvalid, "Admin endpoints are disabled", http.StatusUnauthorized, nil))
			c.Abort()
			return
		}

		provided := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(adminToken)) != 1 {
			c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeAdminTokenInvalid, "Invalid admin token", http.StatusUnauthorized, nil))
			c.Abort()
			return
		}

		c.Next()
	}
}
