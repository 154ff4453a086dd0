package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	AIServiceURL    string
	LogLevel        string
	AppEnv          string
	DefaultTemplate string
	BodyLimitMB     int
	ShutdownTimeout time.Duration
}

// Development reports whether the service runs outside production.
func (c Config) Development() bool {
	return c.AppEnv == "development" || c.AppEnv == "dev"
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "3000"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		AIServiceURL:    getEnv("AI_SERVICE_URL", "http://ai-service:8000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		AppEnv:          getEnv("APP_ENV", "production"),
		DefaultTemplate: getEnv("DEFAULT_TEMPLATE", "modern"),
		BodyLimitMB:     getEnvInt("BODY_LIMIT_MB", 4),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
