// Package config loads application settings from .env files and the
// environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default location.
	DBPath string
	// LogFile is the log destination. Empty means the default location.
	LogFile string
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string
	// CatalogPath replaces the embedded catalog when set.
	CatalogPath string
}

// Load reads .env and env from the working directory (missing files are
// ignored; variables already set win) and then the EDGEAI_* variables.
func Load() Config {
	_ = godotenv.Load()      // .env
	_ = godotenv.Load("env") // env (no leading dot)
	return FromEnv()
}

// FromEnv reads the EDGEAI_* variables without touching any files.
func FromEnv() Config {
	return Config{
		DBPath:      getEnv("EDGEAI_DB", ""),
		LogFile:     getEnv("EDGEAI_LOG_FILE", ""),
		LogLevel:    strings.ToLower(getEnv("EDGEAI_LOG_LEVEL", "info")),
		CatalogPath: getEnv("EDGEAI_CATALOG", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}
