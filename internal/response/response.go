package response

import "github.com/gin-gonic/gin"

// OK writes the standard success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(200, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes the standard failure envelope. The code field
// mirrors the HTTP status so kiosk clients can branch without
// inspecting transport details.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   msg,
		"code":    status,
	})
}
