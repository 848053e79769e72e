package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile  string        // Optional: path to SQLite database file (default: ./forum.db)
	PepperFile    string        // Optional: path to pepper file for password hashing (default: ./pepper)
	SessionSecret string        // Required: HMAC key for signing session cookies
	SessionTTL    time.Duration // Optional: session cookie lifetime (default: 24h)
	SecureCookies bool          // Optional: set the Secure attribute on cookies (default: true outside dev)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		DatabaseFile:        getEnvOrDefault("FORUM_DATABASE_FILE", "forum.db"),
		PepperFile:          getEnvOrDefault("FORUM_PEPPER_FILE", "pepper"),
		SessionSecret:       os.Getenv("FORUM_SESSION_SECRET"),
		SessionTTL:          getEnvDurationOrDefault("FORUM_SESSION_TTL", 24*time.Hour),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	// Dev runs over plain HTTP, where Secure cookies would never be sent.
	cfg.SecureCookies = cfg.Env != "dev"
	if v := os.Getenv("FORUM_SECURE_COOKIES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SecureCookies = b
		}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
