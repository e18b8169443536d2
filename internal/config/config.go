package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	DatabasePath string
	JWTSecret    string
	JWTIssuer    string
	Port         string

	// Token configuration
	TokenDuration time.Duration

	// HTTP server settings
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// CORS
	AllowedOrigins string
}

func Load() *Config {
	return &Config{
		DatabasePath: getEnv("DATABASE_PATH", "taskmanager.db"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTIssuer:    getEnv("JWT_ISSUER", "taskmanager-api"),
		Port:         getEnv("PORT", "8080"),

		TokenDuration: getDurationEnv("TOKEN_DURATION", 24*time.Hour),

		ReadTimeout:  getDurationEnv("READ_TIMEOUT", 30*time.Second),
		WriteTimeout: getDurationEnv("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:  getDurationEnv("IDLE_TIMEOUT", 120*time.Second),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if defaultValue == "" {
		log.Fatalf("Environment variable %s is required", key)
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: Invalid duration value for %s, using default %v", key, defaultValue)
	}
	return defaultValue
}
