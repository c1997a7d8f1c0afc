// Admin guard: роль перепроверяется на каждый запрос, deny-by-default.
// Две формы: API (структурные ошибки 401/403/500) и страницы (redirect на логин).
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/writerai/backend/internal/auth"
	"github.com/writerai/backend/internal/response"
)

// AdminAPI защищает admin-маршруты API: без валидной admin-сессии — 401,
// identity без роли — 403, сбой проверки — 500 с общим сообщением.
func AdminAPI(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(auth.AdminCookieName)
		if err != nil || cookie == "" {
			response.AbortWithError(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		userID, err := gate.VerifyAdminSession(c.Request.Context(), cookie)
		switch {
		case err == nil:
			setAdminContext(c, userID)
			c.Next()
		case errors.Is(err, auth.ErrInvalidSession) || errors.Is(err, auth.ErrSessionRevoked):
			response.AbortWithError(c, http.StatusUnauthorized, "unauthorized")
		case errors.Is(err, auth.ErrNotAuthorized):
			response.AbortWithError(c, http.StatusForbidden, "forbidden")
		default:
			response.AbortWithError(c, http.StatusInternalServerError, "internal server error")
		}
	}
}

// AdminPage защищает admin-страницы: любой отказ — redirect на страницу входа
// (осознанное отличие от строгого API-отказа), успех — запрос идёт дальше как есть.
func AdminPage(gate *auth.Gate, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(auth.AdminCookieName)
		if err != nil || cookie == "" {
			redirectToLogin(c, loginPath)
			return
		}

		userID, err := gate.VerifyAdminSession(c.Request.Context(), cookie)
		if err != nil {
			redirectToLogin(c, loginPath)
			return
		}
		setAdminContext(c, userID)
		c.Next()
	}
}

func setAdminContext(c *gin.Context, userID string) {
	c.Set(string(ContextKeyAdminID), userID)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ContextKeyAdminID, userID))
}

func redirectToLogin(c *gin.Context, loginPath string) {
	c.Redirect(http.StatusFound, loginPath)
	c.Abort()
}
