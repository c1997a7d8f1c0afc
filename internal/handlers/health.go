// System handlers; ответы готовы к i18n (язык из контекста).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/writerai/backend/internal/i18n"
	"github.com/writerai/backend/internal/middleware"
	"github.com/writerai/backend/internal/response"
)

// Health возвращает 200 с локализованным сообщением.
func Health(c *gin.Context) {
	lang := middleware.LanguageFrom(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"status": i18n.T(lang, "ok")})
}
