package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration for the application. It is constructed once
// at startup and handed to constructors; nothing reads the environment after
// that.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT configuration
	JWTSecret string

	// Image hosting configuration
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a new Config instance from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "biopage"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		S3Bucket:   getEnv("S3_BUCKET_NAME", "biopage-profile-images"),
		AWSRegion:  getEnv("AWS_REGION", "us-east-1"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ValidateConfig checks that the secrets without sane defaults are present
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET environment variable is required")
	}
	if cfg.DBPassword == "" && GetEnvironment() == Production {
		errors = append(errors, "DB_PASSWORD environment variable is required in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
