package config

import (
	"os"
	"strconv"
	"time"
)

// Application settings
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Feed     FeedConfig
}

// Server settings
type ServerConfig struct {
	Port string
}

// Logging settings
type LoggingConfig struct {
	Level string
}

// Session token settings
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// User store settings
type DatabaseConfig struct {
	URL string
}

// External analytics feed settings
type FeedConfig struct {
	DataURL            string
	RequestTimeout     time.Duration
	RateLimitPerSecond int
}

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getDurationEnv("TOKEN_TTL", "2h"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Feed: FeedConfig{
			DataURL:            getEnv("DATA_URL", ""),
			RequestTimeout:     getDurationEnv("FEED_TIMEOUT", "30s"),
			RateLimitPerSecond: getIntEnv("FEED_RATE_LIMIT_PER_SECOND", 100),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
