package response

import (
	"github.com/gin-gonic/gin"
)

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Success sends a standardized success acknowledgement
func Success(c *gin.Context) {
	c.JSON(200, gin.H{"success": true})
}

// Empty sends an empty JSON object, used when a lookup has no row to return
func Empty(c *gin.Context) {
	c.JSON(200, gin.H{})
}
