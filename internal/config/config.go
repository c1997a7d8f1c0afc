// Конфигурация приложения только из переменных окружения (секреты не в репозитории).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config — корневая структура конфигурации (env-only).
type Config struct {
	App      App
	Server   Server
	Redis    Redis
	Supabase Supabase
	Stripe   Stripe
	Paddle   Paddle
	Security Security
}

// App — имя окружения; от него зависит атрибут Secure у cookie и режим логгера.
type App struct {
	Env string // production | staging | local
}

// IsProduction — true только для production (cookie Secure, zap production).
func (a App) IsProduction() bool { return a.Env == "production" }

// Server — настройки HTTP-сервера (порт, таймауты, время на shutdown).
type Server struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Redis — адрес, пароль, пул, таймауты (для rate limit и admin-сессий).
type Redis struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Supabase — hosted identity/data сервис: auth (GoTrue) и data API (PostgREST).
type Supabase struct {
	URL        string // например https://xyz.supabase.co
	ServiceKey string // service role key — только на сервере
	AnonKey    string // публичный ключ, отдаётся фронту через /auth/test
	Timeout    time.Duration
}

// Stripe — ключи и return URL для billing portal.
type Stripe struct {
	SecretKey       string
	PublishableKey  string
	PortalReturnURL string
}

// Paddle — Paddle Billing API: серверный ключ и публичные идентификаторы.
type Paddle struct {
	APIKey      string
	BaseURL     string // по умолчанию https://api.paddle.com
	ClientToken string // публичный client-side token
	VendorID    string
	ProductID   string
	PriceID     string
	Timeout     time.Duration
}

// Security — лимиты запросов, секрет подписи admin-сессии и TTL обеих cookie.
type Security struct {
	RateLimitRPS    int
	SessionSecret   string        // HS256 ключ admin-сессии
	AdminSessionTTL time.Duration // admin_session cookie + redis запись
	AuthMarkerTTL   time.Duration // auth_session marker cookie
}

// Load читает конфиг из env; SESSION_SECRET, SUPABASE_URL и SUPABASE_SERVICE_KEY обязательны.
func Load() (*Config, error) {
	cfg := &Config{
		App: App{
			Env: getEnv("APP_ENV", "local"),
		},
		Server: Server{
			Port:            getInt("SERVER_PORT", 8080),
			ReadTimeout:     getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Redis: Redis{
			Addr:         getEnv("REDIS_ADDR", "localhost:6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getInt("REDIS_DB", 0),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Supabase: Supabase{
			URL:        strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
			ServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
			AnonKey:    getEnv("SUPABASE_ANON_KEY", ""),
			Timeout:    getDuration("SUPABASE_TIMEOUT", 8*time.Second),
		},
		Stripe: Stripe{
			SecretKey:       getEnv("STRIPE_SECRET_KEY", ""),
			PublishableKey:  getEnv("STRIPE_PUBLISHABLE_KEY", ""),
			PortalReturnURL: getEnv("STRIPE_PORTAL_RETURN_URL", ""),
		},
		Paddle: Paddle{
			APIKey:      getEnv("PADDLE_API_KEY", ""),
			BaseURL:     strings.TrimRight(getEnv("PADDLE_BASE_URL", "https://api.paddle.com"), "/"),
			ClientToken: getEnv("PADDLE_CLIENT_TOKEN", ""),
			VendorID:    getEnv("PADDLE_VENDOR_ID", ""),
			ProductID:   getEnv("PADDLE_PRODUCT_ID", ""),
			PriceID:     getEnv("PADDLE_PRICE_ID", ""),
			Timeout:     getDuration("PADDLE_TIMEOUT", 8*time.Second),
		},
		Security: Security{
			RateLimitRPS:    getInt("RATE_LIMIT_RPS", 100),
			SessionSecret:   getEnv("SESSION_SECRET", ""),
			AdminSessionTTL: getDuration("ADMIN_SESSION_TTL", 24*time.Hour),
			AuthMarkerTTL:   getDuration("AUTH_MARKER_TTL", 7*24*time.Hour),
		},
	}
	if cfg.Security.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.Supabase.URL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.Supabase.ServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}
	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getInt парсит целое из env или возвращает def.
func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// getDuration парсит длительность из env или возвращает def.
func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
