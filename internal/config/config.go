package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ServerAddr     string
	SigningKey     []byte
	AllowedOrigins []string
	Production     bool
	Database       DatabaseConfig
}

type DatabaseConfig struct {
	Name     string
	User     string
	Password string
	Host     string
	Port     int
	UseSSL   bool
}

// FromEnv builds the configuration from the process environment. The
// signing key arrives base64 encoded.
func FromEnv() (*Config, error) {
	base64Secret := os.Getenv("SIGNING_KEY")
	if base64Secret == "" {
		return nil, fmt.Errorf("signing key cannot be empty")
	}

	signingKey, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("decode signing key: %w", err)
	}

	dbName := getEnv("DB_NAME", "parlor")
	if dbName == "" {
		return nil, fmt.Errorf("database name cannot be empty")
	}

	port, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}

	var allowedOrigins []string
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}

	return &Config{
		ServerAddr:     getEnv("SERVER_ADDR", "localhost:8000"),
		SigningKey:     signingKey,
		AllowedOrigins: allowedOrigins,
		Production:     os.Getenv("ENVIRONMENT") == "production",
		Database: DatabaseConfig{
			Name:     dbName,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			UseSSL:   os.Getenv("DB_SSL") == "true",
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}
