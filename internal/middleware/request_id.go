// Middleware: X-Request-ID в формате UUID; браузерные клиенты заголовок
// не шлют, поэтому при отсутствии или неверном формате id генерируется.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderXRequestID = "X-Request-ID"

// RequestIDMiddleware принимает валидный X-Request-ID (UUID) или генерирует свой;
// id кладётся в контекст и возвращается в заголовке ответа.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := ""
		if raw := c.GetHeader(HeaderXRequestID); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				rid = id.String()
			}
		}
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(string(ContextKeyRequestID), rid)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ContextKeyRequestID, rid))
		c.Header(HeaderXRequestID, rid)
		c.Next()
	}
}
