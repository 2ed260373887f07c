package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
)

// SessionAuthMiddleware creates a Gin middleware handler that requires a live
// session cookie for the given realm. The validation desk and the upload desk
// use separate cookies, so a login on one never unlocks the other.
func SessionAuthMiddleware(auth portssvc.AuthSvcFacade, realm domain.Realm) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		token, err := c.Cookie(auth.CookieName(realm))
		if err != nil || !auth.VerifySession(realm, token) {
			logger.Warn("Rejected request without live session", "realm", string(realm))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}
