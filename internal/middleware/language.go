// Middleware: язык запроса — query → cookie → Accept-Language → en.
// Нераспознанные значения пропускаются молча; запрос никогда не отклоняется.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/writerai/backend/internal/locale"
)

// LanguageMiddleware резолвит язык, кладёт его в контекст и отражает выбор
// в ответе: Content-Language всегда, cookie — когда язык пришёл из query.
func LanguageMiddleware(secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, persist := locale.Resolve(c.Request)
		if persist {
			locale.SetCookie(c.Writer, lang, secureCookies)
		}
		c.Header("Content-Language", lang)

		c.Set(string(ContextKeyLanguage), lang)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ContextKeyLanguage, lang))
		c.Next()
	}
}
