package config

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	DBPath                string
	DBDriver              string
	DBMigrate             bool
	RedisAddr             string
	GRPCPort              int
	GRPCHost              string
	GRPCReflectionEnabled bool
	APIKey                string
	APIKeyHeader          string
	GatewayPort           int
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		DBPath:                getEnv("DB_PATH", "./data/database.db"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite3"),
		DBMigrate:             getBoolEnv("DB_MIGRATE", true),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		GRPCPort:              getIntEnv("GRPC_PORT", 50051),
		GRPCHost:              getEnv("GRPC_HOST", "localhost"),
		GRPCReflectionEnabled: getBoolEnv("GRPC_REFLECTION_ENABLED", false),
		APIKey:                getEnv("API_KEY", ""),
		APIKeyHeader:          getEnv("API_KEY_HEADER", "X-API-KEY"),
		GatewayPort:           getIntEnv("GATEWAY_PORT", 8080),
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	val, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return val
}

func getBoolEnv(key string, fallback bool) bool {
	val, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return val
}
