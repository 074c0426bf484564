package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "hosteldesk.db"
	defaultLogLevel    = "info"
	defaultLogPretty   = "false"
)

type Config struct {
	Addr               string
	DatabaseURL        string
	LogLevel           string
	LogPretty          bool
	CORSAllowedOrigins []string
}

// Load reads the runtime configuration from the environment, picking up a
// local .env file first when one exists.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:        strings.TrimSpace(getEnv("ADDR", defaultAddr)),
		DatabaseURL: strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		LogLevel:    strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel))),
		LogPretty:   parseBoolEnv("LOG_PRETTY", defaultLogPretty),
	}

	if origins := strings.TrimSpace(getEnv("CORS_ALLOWED_ORIGINS", "")); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}

	return cfg
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
