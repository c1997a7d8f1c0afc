package auth

import (
	"net/http"
	"time"
)

// Канонические имена cookie. Исторически у admin-сессии было несколько
// вариантов имён и атрибутов; контракт сведён к одному.
const (
	// AdminCookieName — подписанная admin-сессия: httpOnly, SameSite=Strict, 1 день.
	AdminCookieName = "admin_session"
	// MarkerCookieName — лёгкий маркер для клиентского middleware: id пользователя,
	// SameSite=Lax, 7 дней, доступна скрипту. Не даёт никаких прав.
	MarkerCookieName = "auth_session"
)

// SetAdminCookie выставляет подписанную admin-сессию на весь сайт.
func SetAdminCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearAdminCookie удаляет admin-сессию у клиента.
func ClearAdminCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// SetMarkerCookie выставляет auth_session маркер (identity pointer, не capability).
func SetMarkerCookie(w http.ResponseWriter, userID string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     MarkerCookieName,
		Value:    userID,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
