package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"companybot-backend/internal/shared/server/respond"
)

// HookSecretHeader carries the shared secret on workflow callbacks.
const HookSecretHeader = "X-Hook-Secret"

// HookSecret gates callback routes behind a shared secret header. With no
// secret configured the routes are disabled outright.
func HookSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			respond.Error(c, http.StatusForbidden, "Callbacks are disabled")
			return
		}
		provided := c.GetHeader(HookSecretHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			respond.Error(c, http.StatusUnauthorized, "Invalid callback secret")
			return
		}
		c.Next()
	}
}
