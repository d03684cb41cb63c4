package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all runtime settings for the Progress Buddy API.
type Config struct {
	Port          string
	Env           string // "development" or "production"
	DBPath        string
	SMTPHost      string
	SMTPPort      string
	EmailUser     string
	EmailPass     string
	AllowedOrigin string
}

// LoadConfig reads configuration from the environment, loading a .env file
// first if one is present.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "3001"),
		Env:           getEnv("APP_ENV", "development"),
		DBPath:        getEnv("DB_PATH", "progress_buddy.db"),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		EmailUser:     strings.TrimSpace(os.Getenv("EMAIL_USER")),
		EmailPass:     strings.TrimSpace(os.Getenv("EMAIL_PASS")),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	return cfg
}

// IsDevelopment reports whether internal error details may be echoed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
