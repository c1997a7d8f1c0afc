// Точка входа сервера: конфиг, переводы, Redis, клиенты внешних сервисов,
// роутер, graceful shutdown.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/writerai/backend/internal/auth"
	"github.com/writerai/backend/internal/billing"
	"github.com/writerai/backend/internal/config"
	"github.com/writerai/backend/internal/i18n"
	"github.com/writerai/backend/internal/redis"
	"github.com/writerai/backend/internal/router"
	"github.com/writerai/backend/internal/supabase"
)

func main() {
	// .env для локального запуска; в production — no-op.
	envFile := config.LoadDotEnvUp(6)

	logger, _ := zap.NewProduction()
	if os.Getenv("APP_ENV") == "local" {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()
	if envFile != "" {
		logger.Info("env file loaded", zap.String("path", envFile))
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	// Переводы (en, ar) из встроенных JSON.
	if err := i18n.Load(); err != nil {
		logger.Fatal("i18n load failed", zap.Error(err))
	}

	// Redis: rate limit + admin-сессии.
	rdb, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logger.Fatal("redis init failed", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	// Клиенты внешних сервисов: identity/data, Stripe, Paddle.
	supa := supabase.New(cfg.Supabase)
	stripeSvc := billing.NewStripeService(cfg.Stripe)
	paddle := billing.NewPaddleClient(cfg.Paddle)

	gate := auth.NewGate(
		supa,
		auth.NewSessionSigner(cfg.Security.SessionSecret, cfg.Security.AdminSessionTTL),
		auth.NewRedisSessionStore(rdb),
		logger,
	)

	r := router.New(router.Dependencies{
		Cfg:    cfg,
		Log:    logger,
		Gate:   gate,
		Supa:   supa,
		Stripe: stripeSvc,
		Paddle: paddle,
		Redis:  rdb,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("http server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	// Ожидание SIGINT/SIGTERM для корректного завершения.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
