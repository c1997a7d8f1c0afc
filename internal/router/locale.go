// Locale router: мутатор языка и таблицы переводов.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/writerai/backend/internal/config"
	"github.com/writerai/backend/internal/handlers"
)

// RegisterLocale регистрирует POST /locale и GET /translations.
func RegisterLocale(v1 *gin.RouterGroup, cfg *config.Config) {
	v1.POST("/locale", handlers.SetLocale(cfg))
	v1.GET("/translations", handlers.Translations())
}
