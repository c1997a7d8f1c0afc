// Content handlers: последние документы пользователя и поиск шаблонов.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/writerai/backend/internal/auth"
	"github.com/writerai/backend/internal/response"
	"github.com/writerai/backend/internal/supabase"
)

// RecentContent — GET /content/recent?limit=: последние документы текущего
// пользователя; identity заново резолвится на каждый запрос.
func RecentContent(gate *auth.Gate, supa *supabase.Client, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := gate.Authenticate(c.Request.Context(), accessTokenFrom(c))
		if err != nil {
			log.Error("recent content auth failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if !res.Authenticated {
			response.Error(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		limit, _ := strconv.Atoi(c.Query("limit"))
		items, err := supa.RecentContent(c.Request.Context(), res.Identity.ID, limit)
		if err != nil {
			log.Error("recent content fetch failed", zap.String("user_id", res.Identity.ID), zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		response.OK(c, gin.H{"content": items})
	}
}

// TemplateLookup — GET /templates/lookup?slug=: шаблон по slug.
func TemplateLookup(gate *auth.Gate, supa *supabase.Client, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := gate.Authenticate(c.Request.Context(), accessTokenFrom(c))
		if err != nil {
			log.Error("template lookup auth failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if !res.Authenticated {
			response.Error(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		slug := c.Query("slug")
		if slug == "" {
			response.Error(c, http.StatusBadRequest, "slug is required")
			return
		}

		tpl, err := supa.TemplateBySlug(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, supabase.ErrNotFound) {
				response.Error(c, http.StatusNotFound, "not found")
				return
			}
			log.Error("template lookup failed", zap.String("slug", slug), zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		response.OK(c, gin.H{"template": tpl})
	}
}
