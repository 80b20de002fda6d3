// Package config reads runtime settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures the settings used by the API server and logger.
// The default demonstration run does not depend on any of them.
type Config struct {
	APIAddress      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        slog.Level
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	// A missing .env is normal; real variables still apply.
	_ = godotenv.Load()

	return Config{
		APIAddress:      getEnv("EXTRACK_API_ADDRESS", ":8222"),
		ReadTimeout:     getDurationEnv("EXTRACK_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDurationEnv("EXTRACK_WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDurationEnv("EXTRACK_SHUTDOWN_TIMEOUT", 5*time.Second),
		LogLevel:        getLevelEnv("LOG_LEVEL", slog.LevelWarn),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func getLevelEnv(key string, fallback slog.Level) slog.Level {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return fallback
	}
	return level
}
