package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE", "")
	t.Setenv("POSTGRES_DSN", "postgres://app:secret@db:5432/jewelry")
	t.Setenv("JWT_SECRET", "0123456789abcdef")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.RateLimitEnabled())
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("STORAGE", "memory")
	t.Setenv("JWT_SECRET", "0123456789abcdef")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://workshop.example, ,http://localhost:3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://workshop.example", "http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("STORAGE", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("JWT_SECRET", "0123456789abcdef")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_DSN")
}

func TestLoad_MemoryStorageNeedsNoDSN(t *testing.T) {
	t.Setenv("STORAGE", "memory")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("JWT_SECRET", "0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage)
}

func TestLoad_UnknownStorage(t *testing.T) {
	t.Setenv("STORAGE", "sqlite")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/jewelry")
	t.Setenv("JWT_SECRET", "0123456789abcdef")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/jewelry")
	t.Setenv("JWT_SECRET", "short")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RateLimitEnabledWithRedis(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/jewelry")
	t.Setenv("JWT_SECRET", "0123456789abcdef")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.RateLimitEnabled())
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
}

func TestRedactDSN(t *testing.T) {
	assert.Equal(t, "postgres://app:****@db:5432/jewelry?sslmode=disable",
		RedactDSN("postgres://app:secret@db:5432/jewelry?sslmode=disable"))
	assert.Equal(t, "postgres://db:5432/jewelry", RedactDSN("postgres://db:5432/jewelry"))
}
