package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/writerai/backend/internal/auth"
	"github.com/writerai/backend/internal/middleware"
	"github.com/writerai/backend/internal/supabase"
)

type stubIdentityService struct {
	profiles map[string]*supabase.Profile
}

func (s *stubIdentityService) UserFromToken(context.Context, string) (*supabase.User, error) {
	return nil, supabase.ErrNoSession
}

func (s *stubIdentityService) ProfileByID(_ context.Context, userID string) (*supabase.Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	return p, nil
}

func newGuardGate(t *testing.T) *auth.Gate {
	t.Helper()
	ids := &stubIdentityService{profiles: map[string]*supabase.Profile{
		"admin":  {ID: "admin", IsAdmin: true},
		"member": {ID: "member", IsAdmin: false},
	}}
	return auth.NewGate(ids, auth.NewSessionSigner("guard-secret", time.Hour), auth.NewMemorySessionStore(), nil)
}

func issueCookie(t *testing.T, gate *auth.Gate, userID string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, gate.IssueAdminSession(context.Background(), w, userID, false))
	return w.Result().Cookies()[0]
}

func newGuardRouter(gate *auth.Gate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1/admin")
	api.Use(middleware.AdminAPI(gate))
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": middleware.AdminIDFrom(c.Request.Context())})
	})

	pages := r.Group("/admin")
	pages.Use(middleware.AdminPage(gate, "/login"))
	pages.GET("/dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})
	return r
}

func TestAdminAPI(t *testing.T) {
	gate := newGuardGate(t)
	r := newGuardRouter(gate)

	t.Run("no cookie is 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "error")
	})

	t.Run("garbage cookie is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", nil)
		req.AddCookie(&http.Cookie{Name: auth.AdminCookieName, Value: "garbage"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("admin cookie passes and fills context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", nil)
		req.AddCookie(issueCookie(t, gate, "admin"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"admin":"admin"`)
	})

	t.Run("revoked cookie is 401", func(t *testing.T) {
		c := issueCookie(t, gate, "admin")
		gate.RevokeAdminSession(context.Background(), c.Value)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", nil)
		req.AddCookie(c)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminPage(t *testing.T) {
	gate := newGuardGate(t)
	r := newGuardRouter(gate)

	t.Run("anonymous redirects to login", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("invalid cookie redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: auth.AdminCookieName, Value: "nope"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("admin passes through unmodified", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.AddCookie(issueCookie(t, gate, "admin"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "dashboard", w.Body.String())
	})
}

func TestLanguageMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.LanguageMiddleware(false))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.LanguageFrom(c.Request.Context()))
	})

	t.Run("default en", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, "en", w.Body.String())
		require.Equal(t, "en", w.Header().Get("Content-Language"))
	})

	t.Run("query switch persists cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?lang=ar", nil))
		require.Equal(t, "ar", w.Body.String())
		require.Equal(t, "ar", w.Header().Get("Content-Language"))
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, "ar", cookies[0].Value)
	})

	t.Run("cookie carries language across requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "writerai_lang", Value: "ar"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, "ar", w.Body.String())
		// язык из cookie заново не персистится
		require.Empty(t, w.Result().Cookies())
	})
}
