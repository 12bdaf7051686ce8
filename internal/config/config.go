package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	Server Server
	Broker Broker
	Log    Log
}

// Server holds HTTP server configuration
type Server struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Broker holds broker configuration
type Broker struct {
	CleanupInterval time.Duration
}

// Log holds logging configuration
type Log struct {
	Level string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{
		Server: Server{
			Host:         getEnv("SERVER_HOST", DefaultHost),
			Port:         getEnvAsInt("SERVER_PORT", DefaultPort),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", DefaultReadTimeout),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", DefaultWriteTimeout),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", DefaultIdleTimeout),
		},
		Broker: Broker{
			CleanupInterval: getEnvAsDuration("CLEANUP_INTERVAL", DefaultCleanupInterval),
		},
		Log: Log{
			Level: getEnv("LOG_LEVEL", DefaultLogLevel),
		},
	}

	return config, nil
}

// Addr returns the host:port the server listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Broker.CleanupInterval <= 0 {
		return fmt.Errorf("invalid cleanup interval: %v", c.Broker.CleanupInterval)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Log.Level)
	}

	return nil
}
