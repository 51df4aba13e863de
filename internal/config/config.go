// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// DBURL is the MongoDB connection URL.
	DBURL string
	// DBName is the MongoDB database name.
	DBName string
	// DBConnectTimeout is the timeout for establishing the initial connection.
	DBConnectTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// PasswordMinLength is the minimum accepted password length at registration.
	PasswordMinLength int

	// RateLimitRegisterEnabled indicates whether IP rate limiting for the
	// registration endpoint is enabled.
	RateLimitRegisterEnabled bool
	// RateLimitRegisterRequestsPerSec is the number of requests allowed per
	// second per IP for the registration endpoint.
	RateLimitRegisterRequestsPerSec float64
	// RateLimitRegisterBurst is the burst size for the registration endpoint.
	RateLimitRegisterBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// PublicDir is the directory served for non-API GET requests.
	PublicDir string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 3000),

		// Database configuration
		DBURL:            env.GetString("DBURL", "mongodb://localhost:27017"),
		DBName:           env.GetString("DB_NAME", "WebShopDb"),
		DBConnectTimeout: env.GetDuration("DB_CONNECT_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Registration
		PasswordMinLength: env.GetInt("PASSWORD_MIN_LENGTH", 10),

		// Rate Limiting for the registration endpoint (IP-based, unauthenticated)
		RateLimitRegisterEnabled:        env.GetBool("RATE_LIMIT_REGISTER_ENABLED", true),
		RateLimitRegisterRequestsPerSec: env.GetFloat64("RATE_LIMIT_REGISTER_REQUESTS_PER_SEC", 5.0),
		RateLimitRegisterBurst:          env.GetInt("RATE_LIMIT_REGISTER_BURST", 10),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "webshop"),
		MetricsPort:      env.GetInt("METRICS_PORT", 3001),

		// Static files
		PublicDir: env.GetString("PUBLIC_DIR", "./public"),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
