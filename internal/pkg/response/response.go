package response

import "github.com/gin-gonic/gin"

// Error bodies are the flat {"error": "..."} shape the admin dashboard
// consumes, with an optional details string for unexpected failures.

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, details string) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}
