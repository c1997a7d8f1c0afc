// Package response — единый формат ответов API: {"success":true, ...} для
// успеха и {"error": "..."} с кодом 400/401/403/429/500 для ошибок.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success отправляет {"success":true} плюс дополнительные поля из extra.
func Success(c *gin.Context, statusCode int, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// OK — сокращение для Success с кодом 200.
func OK(c *gin.Context, extra gin.H) {
	Success(c, http.StatusOK, extra)
}

// Error отправляет {"error": message} с указанным кодом.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// AbortWithError прерывает цепочку и отправляет ошибку (для middleware).
func AbortWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": message})
}
