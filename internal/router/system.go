// System router: health и другие системные маршруты.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/writerai/backend/internal/handlers"
)

// RegisterSystem монтирует системные маршруты (например /api/v1/health).
func RegisterSystem(v1 *gin.RouterGroup) {
	v1.GET("/health", handlers.Health)
}
