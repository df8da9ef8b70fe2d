// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Filter   FilterConfig
}

type ServerConfig struct {
	GRPCPort    string
	Environment string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig is optional; with an empty Addr the caches stay
// in-process.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	TokenDuration time.Duration
}

// FilterConfig tunes the classification engine's caches and defaults.
type FilterConfig struct {
	TimezoneCacheTTL     time.Duration
	CountCacheTTL        time.Duration
	DefaultRetentionDays int
}

func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			GRPCPort:    getEnv("GRPC_PORT", "50051"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "daybook"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "dev-secret-change-in-production"),
			TokenDuration: getEnvAsDuration("JWT_TOKEN_DURATION", 15*time.Minute),
		},
		Filter: FilterConfig{
			TimezoneCacheTTL:     getEnvAsDuration("TIMEZONE_CACHE_TTL", 30*time.Second),
			CountCacheTTL:        getEnvAsDuration("COUNT_CACHE_TTL", 5*time.Second),
			DefaultRetentionDays: getEnvAsInt("COMPLETED_RETENTION_DAYS", 7),
		},
	}, nil
}

// Validate rejects configurations that would come up broken rather than
// degraded.
func (c *Config) Validate() error {
	if c.IsProduction() && c.JWT.Secret == "dev-secret-change-in-production" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.Filter.DefaultRetentionDays < 1 {
		return fmt.Errorf("COMPLETED_RETENTION_DAYS must be at least 1")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}

	return defaultValue
}
