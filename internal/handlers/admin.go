// Admin handlers: выпуск и отзыв admin-сессии, удаление контента.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/writerai/backend/internal/auth"
	"github.com/writerai/backend/internal/config"
	"github.com/writerai/backend/internal/middleware"
	"github.com/writerai/backend/internal/response"
	"github.com/writerai/backend/internal/supabase"
)

type adminSessionRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// AdminSession — POST /admin/session {userId}: проверка роли во внешнем
// profile store и выпуск admin_session cookie. Не-админ — 403 и никакой cookie.
func AdminSession(gate *auth.Gate, cfg *config.Config, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adminSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "userId is required")
			return
		}

		err := gate.IssueAdminSession(c.Request.Context(), c.Writer, req.UserID, cfg.App.IsProduction())
		switch {
		case err == nil:
			response.OK(c, nil)
		case errors.Is(err, auth.ErrNotAuthorized):
			response.Error(c, http.StatusForbidden, "not authorized")
		default:
			log.Error("admin session issue failed", zap.String("user_id", req.UserID), zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "internal server error")
		}
	}
}

// AdminLogout — POST /admin/logout: отзыв записи сессии и очистка cookie.
// Cookie чистится даже если отзыв в store не удался.
func AdminLogout(gate *auth.Gate, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(auth.AdminCookieName); err == nil && cookie != "" {
			gate.RevokeAdminSession(c.Request.Context(), cookie)
		}
		auth.ClearAdminCookie(c.Writer, cfg.App.IsProduction())
		response.OK(c, nil)
	}
}

type deleteContentRequest struct {
	ID string `json:"id" binding:"required"`
}

// AdminDeleteContent — POST /admin/content/delete {id}: удаление одной строки
// через data API. Доступ уже проверен guard-ом (401 там, не здесь).
func AdminDeleteContent(supa *supabase.Client, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req deleteContentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "id is required")
			return
		}

		if err := supa.DeleteContent(c.Request.Context(), req.ID); err != nil {
			log.Error("content delete failed",
				zap.String("content_id", req.ID),
				zap.String("admin_id", middleware.AdminIDFrom(c.Request.Context())),
				zap.Error(err),
			)
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		response.OK(c, nil)
	}
}
