// Package config handles configuration loading for the EstudeAI API.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds all configuration for the service. Loaded once at startup
// and read-only afterwards.
type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	JWTSecret       string
	JWTAccessExpiry time.Duration
	BcryptCost      int
	Port            string
	Environment     string
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		DBHost:          getEnvRequired("DB_HOST"),
		DBPort:          getEnvRequired("DB_PORT"),
		DBUser:          getEnvRequired("DB_USER"),
		DBPassword:      getEnvRequired("DB_PASSWORD"),
		DBName:          getEnvRequired("DB_NAME"),
		JWTSecret:       getEnvRequired("JWT_SECRET"),
		JWTAccessExpiry: parseDuration(getEnv("JWT_ACCESS_EXPIRY", "168h"), 168*time.Hour),
		BcryptCost:      parseInt(getEnv("BCRYPT_COST", ""), bcrypt.DefaultCost),
		Port:            getEnv("PORT", "8000"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LoginRateLimit:  parseInt(getEnv("LOGIN_RATE_LIMIT", "10"), 10),
		LoginRateWindow: parseDuration(getEnv("LOGIN_RATE_WINDOW", "1m"), time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func parseInt(value string, defaultValue int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
