package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the process-wide configuration. Everything is fixed at startup;
// nothing is hot-reloadable.
type Config struct {
	ServerAddr  string
	JWTSecret   string
	TokenTTL    time.Duration
	ModelPath   string
	DatabaseURL string
}

func Load() Config {
	return Config{
		ServerAddr:  getenv("SERVER_ADDR", "0.0.0.0:8000"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    time.Duration(getenvInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
		ModelPath:   getenv("MODEL_PATH", "model.json"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}
