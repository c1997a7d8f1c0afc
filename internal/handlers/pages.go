// Admin page shell: сам UI рендерит фронт, сервер отдаёт каркас документа
// с корректными lang/dir атрибутами (направление всегда выводится из языка).
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/writerai/backend/internal/i18n"
	"github.com/writerai/backend/internal/middleware"
)

// AdminHome отдаёт HTML-каркас admin-страницы; guard уже пропустил только админа.
func AdminHome(c *gin.Context) {
	lang := middleware.LanguageFrom(c.Request.Context())
	title := i18n.T(lang, "admin.title")

	page := fmt.Sprintf(
		`<!DOCTYPE html><html lang=%q dir=%q><head><meta charset="utf-8"><title>%s</title></head><body><div id="root" data-admin=%q></div></body></html>`,
		lang, i18n.Direction(lang), title, middleware.AdminIDFrom(c.Request.Context()),
	)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
