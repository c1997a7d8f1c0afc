// Ключи контекста и геттеры для request_id, языка и admin-identity.
package middleware

import "context"

type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyLanguage  contextKey = "language"
	ContextKeyAdminID   contextKey = "admin_id" // заполняется AdminAPI/AdminPage guard
)

// RequestIDFrom возвращает X-Request-ID из контекста.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// LanguageFrom возвращает язык запроса; по умолчанию "en".
func LanguageFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyLanguage).(string); ok {
		return v
	}
	return "en"
}

// AdminIDFrom возвращает id администратора (после admin guard).
func AdminIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyAdminID).(string); ok {
		return v
	}
	return ""
}
