// Admin router: выпуск/отзыв admin-сессии открыты (cookie появляется только
// после проверки роли), остальное — под AdminAPI guard; страницы — под AdminPage.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/writerai/backend/internal/handlers"
	"github.com/writerai/backend/internal/middleware"
)

// RegisterAdminAPI регистрирует /admin/* маршруты API.
func RegisterAdminAPI(v1 *gin.RouterGroup, deps Dependencies) {
	admin := v1.Group("/admin")

	// Выпуск сессии сам проверяет роль; guard здесь был бы циклом.
	admin.POST("/session", handlers.AdminSession(deps.Gate, deps.Cfg, deps.Log))
	admin.POST("/logout", handlers.AdminLogout(deps.Gate, deps.Cfg))

	guarded := admin.Group("")
	guarded.Use(middleware.AdminAPI(deps.Gate))
	guarded.POST("/content/delete", handlers.AdminDeleteContent(deps.Supa, deps.Log))
}

// RegisterAdminPages регистрирует HTML-страницы админки: любой отказ guard-а —
// redirect на страницу входа, не голый 403.
func RegisterAdminPages(r *gin.Engine, deps Dependencies) {
	pages := r.Group("/admin")
	pages.Use(middleware.LanguageMiddleware(deps.Cfg.App.IsProduction()))
	pages.Use(middleware.AdminPage(deps.Gate, LoginPath))
	pages.GET("", handlers.AdminHome)
	pages.GET("/dashboard", handlers.AdminHome)
}
