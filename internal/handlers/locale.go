// Locale handlers: единственный мутатор языка и выдача таблиц переводов.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/writerai/backend/internal/config"
	"github.com/writerai/backend/internal/i18n"
	"github.com/writerai/backend/internal/locale"
	"github.com/writerai/backend/internal/middleware"
	"github.com/writerai/backend/internal/response"
)

type setLocaleRequest struct {
	Language string `json:"language" binding:"required"`
}

// SetLocale — POST /locale {language}: единственный setLanguage. Валидирует
// en|ar, персистит cookie и возвращает производное направление текста
// (isRTL нигде не хранится, только вычисляется).
func SetLocale(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setLocaleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "language is required")
			return
		}
		if !i18n.Supported(req.Language) {
			response.Error(c, http.StatusBadRequest, "unsupported language; allowed: en, ar")
			return
		}

		locale.SetCookie(c.Writer, req.Language, cfg.App.IsProduction())
		c.Header("Content-Language", req.Language)
		response.OK(c, gin.H{
			"language":  req.Language,
			"direction": i18n.Direction(req.Language),
			"isRTL":     i18n.IsRTL(req.Language),
		})
	}
}

// Translations — GET /translations[?lang=]: полная таблица языка для гидратации
// клиентского резолвера. Без параметра — язык текущего запроса.
func Translations() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" {
			lang = middleware.LanguageFrom(c.Request.Context())
		}
		if !i18n.Supported(lang) {
			response.Error(c, http.StatusBadRequest, "unsupported language; allowed: en, ar")
			return
		}
		response.OK(c, gin.H{
			"language":     lang,
			"direction":    i18n.Direction(lang),
			"translations": i18n.Table(lang),
		})
	}
}
