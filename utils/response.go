package utils

import "github.com/gin-gonic/gin"

// Success builds the standard success envelope
func Success(data interface{}, message string) gin.H {
	return gin.H{
		"success": true,
		"data":    data,
		"message": message,
	}
}

// Error builds the standard failure envelope
func Error(message string, code int) gin.H {
	return gin.H{
		"success": false,
		"message": message,
		"code":    code,
	}
}
