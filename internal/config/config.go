// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPAddr           string
	Storage            string // postgres or memory
	PostgresDSN        string
	RedisAddr          string // empty disables rate limiting
	RateLimitPerMinute int
	JWTSecret          string
	TokenTTL           time.Duration
	LogMode            string
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
}

// Load reads the environment, after merging a .env file from the working directory if present.
// Variables already set in the process environment win over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	storage := envOr("STORAGE", StoragePostgres)
	dsn := os.Getenv("POSTGRES_DSN")
	if storage == StoragePostgres {
		if _, err := mustEnv("POSTGRES_DSN"); err != nil {
			return nil, err
		}
	}
	secret, err := mustEnv("JWT_SECRET")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:           envOr("HTTP_ADDR", ":8080"),
		Storage:            storage,
		PostgresDSN:        dsn,
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RateLimitPerMinute: envIntOr("RATE_LIMIT_PER_MINUTE", 120),
		JWTSecret:          secret,
		TokenTTL:           envDurationOr("TOKEN_TTL", 24*time.Hour),
		LogMode:            envOr("LOG_MODE", "dev"),
		ShutdownTimeout:    envDurationOr("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSAllowedOrigins: envListOr("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Storage != StoragePostgres && c.Storage != StorageMemory {
		return fmt.Errorf("STORAGE must be %q or %q, got %q", StoragePostgres, StorageMemory, c.Storage)
	}
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be non-negative, got %d", c.RateLimitPerMinute)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	return nil
}

// RateLimitEnabled reports whether requests should be throttled per caller.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisAddr != "" && c.RateLimitPerMinute > 0
}

func mustEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("missing env: %s", key)
	}
	return v, nil
}

func envOr(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func envDurationOr(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// envListOr splits a comma-separated variable, dropping blank entries.
func envListOr(key string, def []string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

var dsnPassword = regexp.MustCompile(`://([^:/?#]+):([^@/]+)@`)

// RedactDSN masks the password of a URL-style DSN: user:pass@ -> user:****@.
func RedactDSN(dsn string) string {
	return dsnPassword.ReplaceAllString(dsn, `://$1:****@`)
}
