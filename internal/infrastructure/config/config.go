package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Admin    AdminConfig
	Postgres PostgresConfig
	Redis    RedisConfig
}

type JWTConfig struct {
	Secret        string        `env:"JWT_SECRET"`
	Issuer        string        `env:"JWT_ISSUER,         default=news-management-system"`
	Audience      string        `env:"JWT_AUDIENCE,       default=news-management-clients"`
	ExpiryMinutes int           `env:"JWT_EXPIRY_MINUTES, default=60"`
	RefreshTTL    time.Duration `env:"JWT_REFRESH_TTL,    default=168h"`
}

// AdminConfig is the configured admin override: a login matching both fields
// yields a synthetic Admin identity (id 0) without touching the account store.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN, default=postgres://localhost:5432/funews?sslmode=disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// TokenTTL converts the configured expiry minutes into a duration.
func (c JWTConfig) TokenTTL() time.Duration {
	return time.Duration(c.ExpiryMinutes) * time.Minute
}
