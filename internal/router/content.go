// Content router: последние документы и шаблоны (нужна живая сессия).
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/writerai/backend/internal/handlers"
)

// RegisterContent регистрирует GET /content/recent и GET /templates/lookup.
func RegisterContent(v1 *gin.RouterGroup, deps Dependencies) {
	v1.GET("/content/recent", handlers.RecentContent(deps.Gate, deps.Supa, deps.Log))
	v1.GET("/templates/lookup", handlers.TemplateLookup(deps.Gate, deps.Supa, deps.Log))
}
