// Package response provides uniform JSON error responses.
package response

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// Error writes a JSON error body with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// AbortError writes a JSON error body and aborts the handler chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// LogError logs the underlying error server-side and responds with the
// given client-facing message, never leaking internal detail.
func LogError(c *gin.Context, status int, err error, message string) {
	slog.Error(message,
		"error", err,
		"status", status,
		"method", c.Request.Method,
		"path", c.FullPath(),
	)
	Error(c, status, message)
}
