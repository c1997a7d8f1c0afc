package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/writerai/backend/internal/auth"
	"github.com/writerai/backend/internal/supabase"
)

// fakeIdentityService — управляемый identity/profile сервис для тестов.
type fakeIdentityService struct {
	users      map[string]*supabase.User    // access token -> user
	profiles   map[string]*supabase.Profile // user id -> profile
	authErr    error
	profileErr error
}

func (f *fakeIdentityService) UserFromToken(_ context.Context, token string) (*supabase.User, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	u, ok := f.users[token]
	if !ok {
		return nil, supabase.ErrNoSession
	}
	return u, nil
}

func (f *fakeIdentityService) ProfileByID(_ context.Context, userID string) (*supabase.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	return p, nil
}

// memorySessionStore — in-memory реализация SessionStore для тестов.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
	err      error
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: map[string]string{}}
}

func (s *memorySessionStore) Create(_ context.Context, jti, userID string, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[jti] = userID
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, jti string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.sessions[jti]
	if !ok {
		return "", auth.ErrSessionNotFound
	}
	return userID, nil
}

func (s *memorySessionStore) Delete(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, jti)
	return nil
}

func newTestGate(ids *fakeIdentityService, store auth.SessionStore) *auth.Gate {
	return auth.NewGate(ids, auth.NewSessionSigner("test-secret", 24*time.Hour), store, nil)
}

func TestGate_Authenticate(t *testing.T) {
	ids := &fakeIdentityService{
		users: map[string]*supabase.User{
			"good-token": {ID: "u1", Email: "u1@example.com"},
		},
	}
	gate := newTestGate(ids, newMemorySessionStore())
	ctx := context.Background()

	t.Run("valid token resolves identity", func(t *testing.T) {
		res, err := gate.Authenticate(ctx, "good-token")
		require.NoError(t, err)
		require.True(t, res.Authenticated)
		require.Equal(t, "u1", res.Identity.ID)
		require.Equal(t, "u1@example.com", res.Identity.Email)
	})

	t.Run("unknown token is anonymous, not an error", func(t *testing.T) {
		res, err := gate.Authenticate(ctx, "bogus")
		require.NoError(t, err)
		require.False(t, res.Authenticated)
		require.Nil(t, res.Identity)
	})

	t.Run("service failure surfaces as error, not anonymous", func(t *testing.T) {
		ids.authErr = errors.New("upstream down")
		defer func() { ids.authErr = nil }()
		_, err := gate.Authenticate(ctx, "good-token")
		require.Error(t, err)
	})
}

func TestGate_AuthorizeAdmin(t *testing.T) {
	ids := &fakeIdentityService{
		profiles: map[string]*supabase.Profile{
			"admin":  {ID: "admin", IsAdmin: true},
			"member": {ID: "member", IsAdmin: false},
		},
	}
	gate := newTestGate(ids, newMemorySessionStore())
	ctx := context.Background()

	t.Run("admin flag true", func(t *testing.T) {
		require.True(t, gate.AuthorizeAdmin(ctx, "admin"))
	})

	// Три разных входа, один и тот же отказ.
	t.Run("no profile row denies", func(t *testing.T) {
		require.False(t, gate.AuthorizeAdmin(ctx, "ghost"))
	})

	t.Run("is_admin false denies", func(t *testing.T) {
		require.False(t, gate.AuthorizeAdmin(ctx, "member"))
	})

	t.Run("profile store error denies", func(t *testing.T) {
		ids.profileErr = errors.New("profile store down")
		defer func() { ids.profileErr = nil }()
		require.False(t, gate.AuthorizeAdmin(ctx, "admin"))
	})

	t.Run("empty id denies", func(t *testing.T) {
		require.False(t, gate.AuthorizeAdmin(ctx, ""))
	})
}

func TestGate_IssueAdminSession(t *testing.T) {
	ids := &fakeIdentityService{
		profiles: map[string]*supabase.Profile{
			"admin":  {ID: "admin", IsAdmin: true},
			"member": {ID: "member", IsAdmin: false},
		},
	}
	ctx := context.Background()

	t.Run("non-admin gets ErrNotAuthorized and no cookie", func(t *testing.T) {
		gate := newTestGate(ids, newMemorySessionStore())
		w := httptest.NewRecorder()
		err := gate.IssueAdminSession(ctx, w, "member", false)
		require.ErrorIs(t, err, auth.ErrNotAuthorized)
		require.Empty(t, w.Result().Cookies())
	})

	t.Run("store failure leaves no cookie", func(t *testing.T) {
		store := newMemorySessionStore()
		store.err = errors.New("redis down")
		gate := newTestGate(ids, store)
		w := httptest.NewRecorder()
		err := gate.IssueAdminSession(ctx, w, "admin", false)
		require.Error(t, err)
		require.Empty(t, w.Result().Cookies())
	})

	t.Run("admin gets a strict httpOnly cookie", func(t *testing.T) {
		gate := newTestGate(ids, newMemorySessionStore())
		w := httptest.NewRecorder()
		require.NoError(t, gate.IssueAdminSession(ctx, w, "admin", true))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		require.Equal(t, auth.AdminCookieName, c.Name)
		require.NotEmpty(t, c.Value)
		require.True(t, c.HttpOnly)
		require.True(t, c.Secure)
		require.Equal(t, http.SameSiteStrictMode, c.SameSite)
		require.Equal(t, "/", c.Path)
		require.Equal(t, int((24 * time.Hour).Seconds()), c.MaxAge)
	})
}

func TestGate_VerifyAdminSession(t *testing.T) {
	ids := &fakeIdentityService{
		profiles: map[string]*supabase.Profile{
			"admin": {ID: "admin", IsAdmin: true},
		},
	}
	ctx := context.Background()

	issue := func(t *testing.T, gate *auth.Gate) string {
		t.Helper()
		w := httptest.NewRecorder()
		require.NoError(t, gate.IssueAdminSession(ctx, w, "admin", false))
		return w.Result().Cookies()[0].Value
	}

	t.Run("round trip", func(t *testing.T) {
		gate := newTestGate(ids, newMemorySessionStore())
		userID, err := gate.VerifyAdminSession(ctx, issue(t, gate))
		require.NoError(t, err)
		require.Equal(t, "admin", userID)
	})

	t.Run("garbage cookie is invalid", func(t *testing.T) {
		gate := newTestGate(ids, newMemorySessionStore())
		_, err := gate.VerifyAdminSession(ctx, "not-a-token")
		require.ErrorIs(t, err, auth.ErrInvalidSession)
	})

	t.Run("revoked session is rejected", func(t *testing.T) {
		gate := newTestGate(ids, newMemorySessionStore())
		token := issue(t, gate)
		gate.RevokeAdminSession(ctx, token)
		_, err := gate.VerifyAdminSession(ctx, token)
		require.ErrorIs(t, err, auth.ErrSessionRevoked)
	})

	t.Run("role is re-verified on every check", func(t *testing.T) {
		gate := newTestGate(ids, newMemorySessionStore())
		token := issue(t, gate)

		// Админа разжаловали после выпуска cookie — cookie больше не пускает.
		ids.profiles["admin"].IsAdmin = false
		defer func() { ids.profiles["admin"].IsAdmin = true }()

		_, err := gate.VerifyAdminSession(ctx, token)
		require.ErrorIs(t, err, auth.ErrNotAuthorized)
	})

	t.Run("wrong signing key is rejected", func(t *testing.T) {
		store := newMemorySessionStore()
		gate := newTestGate(ids, store)
		token := issue(t, gate)

		other := auth.NewGate(ids, auth.NewSessionSigner("other-secret", 24*time.Hour), store, nil)
		_, err := other.VerifyAdminSession(ctx, token)
		require.ErrorIs(t, err, auth.ErrInvalidSession)
	})
}
