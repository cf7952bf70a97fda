package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	RedisURL            string
	JWTSecret           string // Secret key for JWT token signing
	JWTTTLHours         int    // JWT token expiration time in hours
	Env                 string // "production" enables the secure cookie flag
	AuthRateLimitMax    int    // Max auth requests per window per client IP
	AuthRateLimitWindow int    // Auth rate limit window in minutes
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	cfg := &Config{
		Port:                getEnv("PORT", "3000"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		RedisURL:            getEnv("REDIS_URL", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		JWTTTLHours:         getEnvInt("JWT_TTL_HOURS", 720), // 30 days
		Env:                 getEnv("APP_ENV", "development"),
		AuthRateLimitMax:    getEnvInt("AUTH_RATE_LIMIT_MAX", 5),
		AuthRateLimitWindow: getEnvInt("AUTH_RATE_LIMIT_WINDOW_MINUTES", 15),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	// An empty signing key would let anyone forge tokens, so refuse to start.
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
