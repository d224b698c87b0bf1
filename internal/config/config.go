package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabaseURL    string
	DatabasePath   string
	MigrationsPath string

	// JWTSecret verifies bearer tokens issued by the account service
	JWTSecret string

	// Amazon SES settings for badge notification emails.
	// Notifications are disabled when SESFromEmail is empty.
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	AppBaseURL   string

	// ReconcileInterval controls the answered-counter reconciliation loop
	ReconcileInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("PORT", "8080"),
		DatabaseType:      getEnv("DB_TYPE", "sqlite"),
		DatabaseURL:       getEnv("DB_URL", ""),
		DatabasePath:      getEnv("DB_PATH", "./educare.db"),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "./migrations"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		AWSRegion:         getEnv("AWS_REGION", "eu-west-1"),
		SESFromEmail:      getEnv("SES_FROM_EMAIL", ""),
		SESFromName:       getEnv("SES_FROM_NAME", "Educare+"),
		AppBaseURL:        getEnv("APP_BASE_URL", "http://localhost:8080"),
		ReconcileInterval: getDurationEnv("RECONCILE_INTERVAL", time.Hour),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv reads a duration environment variable or returns a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
