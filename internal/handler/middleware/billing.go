package middleware

import (
	"crypto/subtle"
	"net/http"

	"turf-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const billingSecretHeader = "X-Billing-Secret"

// RequireBillingSecret guards gateway callbacks with a shared secret.
func RequireBillingSecret(cfg config.BillingConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.CallbackSecret == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": gin.H{"message": "Billing callbacks are disabled"},
			})
			c.Abort()
			return
		}

		got := c.GetHeader(billingSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(cfg.CallbackSecret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid billing signature"},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
