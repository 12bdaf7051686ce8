package config

import "time"

// Default configuration values
const (
	// Server defaults
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 3000
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Broker defaults
	DefaultCleanupInterval = 60 * time.Second

	// Logging defaults
	DefaultLogLevel = "info"
)
