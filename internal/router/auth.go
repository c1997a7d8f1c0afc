// Auth router: статус сессии, маркерная cookie, диагностика.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/writerai/backend/internal/handlers"
)

// RegisterAuth регистрирует GET /auth/{status,session,refresh,test}.
func RegisterAuth(v1 *gin.RouterGroup, deps Dependencies) {
	authGroup := v1.Group("/auth")
	authGroup.GET("/status", handlers.AuthStatus(deps.Gate, deps.Log))
	authGroup.GET("/session", handlers.AuthSession(deps.Gate, deps.Cfg, deps.Log))
	authGroup.GET("/refresh", handlers.AuthRefresh(deps.Gate, deps.Cfg, deps.Log))
	authGroup.GET("/test", handlers.AuthTest(deps.Cfg))
}
