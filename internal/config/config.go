package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort       string
	DatabaseURL   string
	JWTSecret     string
	TokenExpires  time.Duration
	AdminPassword string
	SeedSample    bool
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "velora.db"),
		JWTSecret:     getEnv("JWT_SECRET", "3c1f8a97d2b44e06a5d9c7215fe38b0a74c6e1d98f2ab35047d1e86c92b5f4a0"),
		TokenExpires:  getEnvDuration("JWT_TTL_HOURS", 24) * time.Hour,
		AdminPassword: getEnv("ADMIN_PASSWORD", "velora2023"),
		SeedSample:    getEnv("SEED_SAMPLE_DATA", "true") == "true",
	}

	if cfg.AppPort == "" {
		log.Fatal("APP_PORT must be set")
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return time.Duration(parsed)
		}
	}
	return time.Duration(fallback)
}
