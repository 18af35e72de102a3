package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ID store backends selectable with ID_STORE.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreNone   = "none"
)

// Config holds the settings of the pixeltracer commands.
type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	LogLevel     string

	// Session limits; 0 disables the limit.
	MaxSessions int
	SessionTTL  int // seconds

	IDStore  string
	IDFile   string
	IDDBPath string
}

// Load reads an optional .env file from the working directory, then the
// environment. Unset or malformed values fall back to defaults; variables
// already present in the environment win over .env entries.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		MaxSessions:  getEnvAsInt("MAX_SESSIONS", 1000),
		SessionTTL:   getEnvAsInt("SESSION_TTL", 3600),
		IDStore:      strings.ToLower(getEnv("ID_STORE", StoreFile)),
		IDFile:       getEnv("ID_FILE", "id.txt"),
		IDDBPath:     getEnv("ID_DB_PATH", "data/db/pixeltracer.db"),
	}
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
// Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
