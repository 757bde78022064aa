package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_TTL_MINUTES", "")
	t.Setenv("MODEL_PATH", "")
	t.Setenv("DATABASE_URL", "")

	cfg := Load()

	assert.Equal(t, "0.0.0.0:8000", cfg.ServerAddr)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "model.json", cfg.ModelPath)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("TOKEN_TTL_MINUTES", "5")
	t.Setenv("MODEL_PATH", "/opt/models/churn.json")
	t.Setenv("DATABASE_URL", "postgres://localhost/churn")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddr)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "/opt/models/churn.json", cfg.ModelPath)
	assert.Equal(t, "postgres://localhost/churn", cfg.DatabaseURL)
}

func TestLoadIgnoresInvalidTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL_MINUTES", "not-a-number")

	cfg := Load()
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}
