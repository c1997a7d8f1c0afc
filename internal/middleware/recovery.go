// Middleware: перехват panic, ответ 500 без утечки стека клиенту.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/writerai/backend/internal/response"
)

// RecoveryMiddleware перехватывает panic, логирует с request_id и возвращает 500
// без раскрытия деталей клиенту.
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", RequestIDFrom(c.Request.Context())),
					zap.Any("panic", err),
				)
				response.AbortWithError(c, http.StatusInternalServerError, "internal server error")
			}
		}()
		c.Next()
	}
}
