package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Contains(t, cfg.DSN(), "parseTime=True")
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Minute, cfg.CategoryCacheTTL)
	assert.False(t, cfg.ResetDB)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":           "s3cret",
		"SERVER_PORT":          "9000",
		"DB_DRIVER":            "postgres",
		"POSTGRES_DSN":         "postgres://app@localhost/studyhub",
		"REDIS_ADDR":           "localhost:6379",
		"REDIS_DB":             "2",
		"CORS_ALLOWED_ORIGINS": "http://a.test,http://b.test",
		"RESET_DB":             "true",
		"CATEGORY_CACHE_TTL":   "30s",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "postgres://app@localhost/studyhub", cfg.DSN())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.True(t, cfg.ResetDB)
	assert.Equal(t, 30*time.Second, cfg.CategoryCacheTTL)
}

func TestLoadFrom_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{}},
		{name: "unknown driver", env: map[string]string{"JWT_SECRET": "x", "DB_DRIVER": "oracle"}},
		{name: "postgres without dsn", env: map[string]string{"JWT_SECRET": "x", "DB_DRIVER": "postgres"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(tt.env))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestConfig_StringRedactsSecret(t *testing.T) {
	cfg := &Config{ServerPort: "8080", DBDriver: "mysql", JWTSecret: "top-secret-value"}
	assert.NotContains(t, cfg.String(), "top-secret-value")
	assert.Contains(t, cfg.String(), "[redacted]")
}
