package respond

import (
	"github.com/gin-gonic/gin"

	"companybot-backend/internal/shared/telemetry"
)

// ErrorResponse is the body of every error reply: a human-readable message
// and nothing else. No structured error codes are exposed beyond the HTTP
// status.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Error logs and sends a standardized error response, aborting the chain.
func Error(c *gin.Context, status int, message string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	if companyID := c.GetString("companyId"); companyID != "" {
		fields["company_id"] = companyID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
