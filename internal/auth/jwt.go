package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionSigner подписывает и проверяет токен admin-сессии (HS256).
// Токен несёт только указатель на identity (sub) и jti для отзыва;
// сам по себе он прав не даёт — роль перепроверяется на каждый запрос.
type SessionSigner struct {
	signingKey []byte
	ttl        time.Duration
}

func NewSessionSigner(signingKey string, ttl time.Duration) *SessionSigner {
	return &SessionSigner{
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

// Issue выпускает токен для userID; возвращает токен и его jti.
func (s *SessionSigner) Issue(userID string) (token string, jti string, err error) {
	now := time.Now()
	jti = uuid.NewString()

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", "", err
	}
	return token, jti, nil
}

// Parse проверяет подпись и срок; возвращает userID и jti.
func (s *SessionSigner) Parse(tokenStr string) (userID string, jti string, err error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || !tok.Valid {
		return "", "", fmt.Errorf("invalid token")
	}
	if claims.Subject == "" || claims.ID == "" {
		return "", "", fmt.Errorf("invalid token claims")
	}
	return claims.Subject, claims.ID, nil
}
