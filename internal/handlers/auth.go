// Auth handlers: статус сессии внешнего identity-сервиса и маркерная cookie.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/writerai/backend/internal/auth"
	"github.com/writerai/backend/internal/config"
	"github.com/writerai/backend/internal/response"
)

// AccessTokenCookie — access-токен identity-сервиса, зеркалируемый фронтом в cookie.
const AccessTokenCookie = "sb-access-token"

// accessTokenFrom достаёт access-токен: Authorization: Bearer, иначе cookie.
func accessTokenFrom(c *gin.Context) string {
	if raw := c.GetHeader("Authorization"); strings.HasPrefix(raw, "Bearer ") {
		if token := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer ")); token != "" {
			return token
		}
	}
	if token, err := c.Cookie(AccessTokenCookie); err == nil {
		return token
	}
	return ""
}

// userPayload — публичная форма identity в ответах.
func userPayload(id, email string) gin.H {
	u := gin.H{"id": id}
	if email != "" {
		u["email"] = email
	}
	return u
}

// AuthStatus — GET /auth/status: {authenticated, user?}. Аноним — это 200,
// ошибкой считается только сбой самой проверки.
func AuthStatus(gate *auth.Gate, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := gate.Authenticate(c.Request.Context(), accessTokenFrom(c))
		if err != nil {
			log.Error("auth status check failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if !res.Authenticated {
			c.JSON(http.StatusOK, gin.H{"authenticated": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"authenticated": true,
			"user":          userPayload(res.Identity.ID, res.Identity.Email),
		})
	}
}

// AuthSession — GET /auth/session: как status, плюс обновление маркерной cookie
// auth_session (указатель на identity для клиентского middleware, прав не даёт).
func AuthSession(gate *auth.Gate, cfg *config.Config, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := gate.Authenticate(c.Request.Context(), accessTokenFrom(c))
		if err != nil {
			log.Error("auth session check failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if !res.Authenticated {
			c.JSON(http.StatusOK, gin.H{"authenticated": false})
			return
		}
		auth.SetMarkerCookie(c.Writer, res.Identity.ID, cfg.Security.AuthMarkerTTL, cfg.App.IsProduction())
		c.JSON(http.StatusOK, gin.H{
			"authenticated": true,
			"user":          userPayload(res.Identity.ID, res.Identity.Email),
		})
	}
}

// AuthRefresh — GET /auth/refresh: перевыпуск маркерной cookie по живой сессии;
// без сессии — 401.
func AuthRefresh(gate *auth.Gate, cfg *config.Config, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := gate.Authenticate(c.Request.Context(), accessTokenFrom(c))
		if err != nil {
			log.Error("auth refresh failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if !res.Authenticated {
			response.Error(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		auth.SetMarkerCookie(c.Writer, res.Identity.ID, cfg.Security.AuthMarkerTTL, cfg.App.IsProduction())
		response.OK(c, gin.H{"user": userPayload(res.Identity.ID, res.Identity.Email)})
	}
}

// AuthTest — GET /auth/test: диагностика для поддержки — какие credentials
// видны в запросе (только факты наличия, никаких значений).
func AuthTest(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		hasAccessCookie := false
		if _, err := c.Cookie(AccessTokenCookie); err == nil {
			hasAccessCookie = true
		}
		hasAdminCookie := false
		if _, err := c.Cookie(auth.AdminCookieName); err == nil {
			hasAdminCookie = true
		}
		hasMarkerCookie := false
		if _, err := c.Cookie(auth.MarkerCookieName); err == nil {
			hasMarkerCookie = true
		}

		c.JSON(http.StatusOK, gin.H{
			"hasAuthorizationHeader": strings.HasPrefix(c.GetHeader("Authorization"), "Bearer "),
			"hasAccessTokenCookie":   hasAccessCookie,
			"hasAdminCookie":         hasAdminCookie,
			"hasMarkerCookie":        hasMarkerCookie,
			"identityServiceReady":   cfg.Supabase.URL != "" && cfg.Supabase.ServiceKey != "",
			"environment":            cfg.App.Env,
		})
	}
}
