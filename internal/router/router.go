// Роутер: сборка Gin — recovery, security headers, CORS глобально;
// /api/v1 с request id, логом, языком и rate limit; /admin со страницами под guard.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/writerai/backend/internal/auth"
	"github.com/writerai/backend/internal/billing"
	"github.com/writerai/backend/internal/config"
	"github.com/writerai/backend/internal/docs"
	"github.com/writerai/backend/internal/middleware"
	"github.com/writerai/backend/internal/supabase"
)

// LoginPath — страница входа, на которую admin guard отправляет всех отказников.
const LoginPath = "/login"

// Dependencies — зависимости роутера: конфиг, логгер, ворота, клиенты провайдеров.
type Dependencies struct {
	Cfg    *config.Config
	Log    *zap.Logger
	Gate   *auth.Gate
	Supa   *supabase.Client
	Stripe *billing.StripeService
	Paddle *billing.PaddleClient
	Redis  *redis.Client
}

// New создаёт движок Gin и регистрирует все маршруты.
func New(deps Dependencies) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Глобально: сначала recovery, затем заголовки безопасности и CORS.
	r.Use(middleware.RecoveryMiddleware(deps.Log))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(cors.New(corsConfig()))
	r.Use(middleware.RequestIDMiddleware())

	// OpenAPI-описание из embed.
	r.StaticFS("/docs", docs.FS)

	secure := deps.Cfg.App.IsProduction()

	// API v1: лог запросов, язык и rate limit на каждый вызов.
	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.RequestLoggerMiddleware(deps.Log))
		v1.Use(middleware.LanguageMiddleware(secure))
		if deps.Redis != nil && deps.Cfg.Security.RateLimitRPS > 0 {
			v1.Use(middleware.RateLimitMiddleware(deps.Redis, deps.Cfg.Security.RateLimitRPS))
		}

		RegisterSystem(v1)
		RegisterLocale(v1, deps.Cfg)
		RegisterAuth(v1, deps)
		RegisterContent(v1, deps)
		RegisterBilling(v1, deps)
		RegisterAdminAPI(v1, deps)
	}

	// Admin-страницы: любой отказ — redirect на /login.
	RegisterAdminPages(r, deps)

	return r
}

// corsConfig — браузерный фронт ходит с cookie, поэтому credentials включены.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = []string{"http://localhost:3000", "https://writerai.app"}
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-ID", "Accept-Language")
	return cfg
}
