package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	RedisURL    string
	JWTSecret   string
	AdminAPIKey string
	ServerPort  string

	MistralAPIKey  string
	MistralBaseURL string
	MistralModel   string
	MistralTimeout time.Duration

	CacheMaxSize int
	CacheTTL     time.Duration

	RateLimitPerHour int
}

func Load() (*Config, error) {
	godotenv.Load()

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		ServerPort:  getEnv("SERVER_PORT", "8080"),

		MistralAPIKey:  getEnv("MISTRAL_API_KEY", ""),
		MistralBaseURL: getEnv("MISTRAL_BASE_URL", "https://api.mistral.ai/v1"),
		MistralModel:   getEnv("MISTRAL_MODEL", "mistral-small-latest"),
		MistralTimeout: getDuration("MISTRAL_TIMEOUT_SECONDS", 30*time.Second),

		CacheMaxSize: getInt("CACHE_MAX_SIZE", 1000),
		CacheTTL:     getDuration("CACHE_TTL_SECONDS", 5*time.Minute),

		RateLimitPerHour: getInt("RATE_LIMIT_PER_HOUR", 100),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return defaultVal
}
