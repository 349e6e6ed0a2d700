// ABOUTME: Environment-based configuration with sensible defaults.
// ABOUTME: A .env file is honored when present; see cmd autoload.
package config

import (
	"os"

	"github.com/harperreed/fittrack/internal/storage"
)

// Config holds the runtime settings for the service.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string
	// DBPath is the SQLite file path; defaults to the XDG data dir.
	DBPath string
	// LogLevel is a logrus level name ("debug", "info", ...).
	LogLevel string
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Addr:     getEnv("FITTRACK_ADDR", ":8080"),
		DBPath:   getEnv("FITTRACK_DB_PATH", storage.DefaultDBPath()),
		LogLevel: getEnv("FITTRACK_LOG_LEVEL", "info"),
	}
}

// OpenStorage opens the configured SQLite store.
func (c *Config) OpenStorage() (*storage.DB, error) {
	return storage.Open(c.DBPath)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
