// Session gate: кто аутентифицирован и является ли он админом. Всё состояние
// identity живёт во внешнем сервисе; здесь только проверки и выпуск admin-сессии.
package auth

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/writerai/backend/internal/supabase"
)

var (
	// ErrNotAuthorized — identity есть, роли admin нет (или её не удалось подтвердить).
	ErrNotAuthorized = errors.New("not authorized")
	// ErrInvalidSession — cookie отсутствует, не парсится или подпись не сходится.
	ErrInvalidSession = errors.New("invalid admin session")
	// ErrSessionRevoked — подпись валидна, но записи в store уже нет (logout).
	ErrSessionRevoked = errors.New("admin session revoked")
)

// IdentityService — срез клиента supabase, нужный воротам (в тестах — фейк).
type IdentityService interface {
	UserFromToken(ctx context.Context, accessToken string) (*supabase.User, error)
	ProfileByID(ctx context.Context, userID string) (*supabase.Profile, error)
}

// Result — исход Authenticate. Authenticated=false при nil ошибке означает
// «явный аноним»; сбой проверки приходит отдельной ошибкой, не этим флагом.
type Result struct {
	Authenticated bool
	Identity      *supabase.User
}

// Gate — единая точка проверки identity и роли.
type Gate struct {
	ids      IdentityService
	signer   *SessionSigner
	sessions SessionStore
	log      *zap.Logger
}

func NewGate(ids IdentityService, signer *SessionSigner, sessions SessionStore, log *zap.Logger) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gate{ids: ids, signer: signer, sessions: sessions, log: log}
}

// Authenticate резолвит identity по access-токену из запроса.
// Пустой или отклонённый токен — Result{Authenticated:false} без ошибки;
// сбой сервиса — ошибка (вызывающие не должны путать эти два случая).
func (g *Gate) Authenticate(ctx context.Context, accessToken string) (Result, error) {
	u, err := g.ids.UserFromToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, supabase.ErrNoSession) {
			return Result{Authenticated: false}, nil
		}
		return Result{}, err
	}
	return Result{Authenticated: true, Identity: u}, nil
}

// AuthorizeAdmin проверяет флаг is_admin во внешнем profile store.
// Три исхода — нет строки, флаг false, ошибка запроса — сводятся к false
// именно здесь, в одной точке: неоднозначность никогда не даёт true.
func (g *Gate) AuthorizeAdmin(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}
	p, err := g.ids.ProfileByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, supabase.ErrNotFound) {
			g.log.Warn("admin profile lookup failed", zap.String("user_id", userID), zap.Error(err))
		}
		return false
	}
	return p.IsAdmin
}

// IssueAdminSession выпускает admin-сессию для userID: сначала проверка роли,
// без неё — ErrNotAuthorized и ни одной записи (никакого частичного состояния).
// Успех: запись в store + подписанная cookie на 1 день.
func (g *Gate) IssueAdminSession(ctx context.Context, w http.ResponseWriter, userID string, secure bool) error {
	if !g.AuthorizeAdmin(ctx, userID) {
		return ErrNotAuthorized
	}

	token, jti, err := g.signer.Issue(userID)
	if err != nil {
		return err
	}
	if err := g.sessions.Create(ctx, jti, userID, g.signer.ttl); err != nil {
		return err
	}
	SetAdminCookie(w, token, g.signer.ttl, secure)
	return nil
}

// VerifyAdminSession проверяет cookie admin-сессии: подпись, живость записи
// в store и — заново — роль во внешнем profile store (cookie лишь указатель
// на identity, не capability).
func (g *Gate) VerifyAdminSession(ctx context.Context, cookieValue string) (string, error) {
	userID, jti, err := g.signer.Parse(cookieValue)
	if err != nil {
		return "", ErrInvalidSession
	}

	storedUser, err := g.sessions.Get(ctx, jti)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return "", ErrSessionRevoked
		}
		return "", err
	}
	if storedUser != userID {
		return "", ErrInvalidSession
	}

	if !g.AuthorizeAdmin(ctx, userID) {
		return "", ErrNotAuthorized
	}
	return userID, nil
}

// RevokeAdminSession удаляет запись сессии (logout). Нечитаемая cookie — no-op:
// очистка cookie у клиента происходит в любом случае.
func (g *Gate) RevokeAdminSession(ctx context.Context, cookieValue string) {
	_, jti, err := g.signer.Parse(cookieValue)
	if err != nil {
		return
	}
	if err := g.sessions.Delete(ctx, jti); err != nil {
		g.log.Warn("admin session revoke failed", zap.Error(err))
	}
}
