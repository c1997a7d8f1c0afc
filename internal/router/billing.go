// Billing router: прокси Stripe и Paddle.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/writerai/backend/internal/handlers"
)

// RegisterBilling регистрирует маршруты обоих платёжных провайдеров.
func RegisterBilling(v1 *gin.RouterGroup, deps Dependencies) {
	b := v1.Group("/billing")

	stripeGroup := b.Group("/stripe")
	stripeGroup.POST("/portal", handlers.StripePortal(deps.Stripe, deps.Supa, deps.Log))
	stripeGroup.GET("/price", handlers.StripePrice(deps.Stripe, deps.Log))
	stripeGroup.GET("/config", handlers.StripeConfig(deps.Stripe))

	paddleGroup := b.Group("/paddle")
	paddleGroup.GET("/price", handlers.PaddlePrice(deps.Paddle, deps.Log))
	paddleGroup.GET("/config", handlers.PaddleConfig(deps.Paddle))
}
