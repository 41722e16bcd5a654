package config

import (
	"errors"
	"os"
	"strconv"
)

// Config is built once at process start and passed into components.
// Nothing below the api layer reads the environment directly.
type Config struct {
	DatabaseURL string

	Host  string
	Port  string
	Debug bool

	UploadDir   string
	FrontendURL string

	SMTPHost      string
	SMTPPort      int
	EmailSender   string
	EmailPassword string

	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:        "0.0.0.0",
		Port:        "8000",
		UploadDir:   "uploads",
		FrontendURL: "http://localhost:3000",
		SMTPHost:    "smtp.gmail.com",
		SMTPPort:    587,
		LogLevel:    "info",
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		// legacy key used by older deployments
		cfg.DatabaseURL = os.Getenv("DB_URL")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New("DEBUG must be a boolean")
		}
		cfg.Debug = b
	}

	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		cfg.UploadDir = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.FrontendURL = v
	}

	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("SMTP_PORT must be an integer")
		}
		cfg.SMTPPort = p
	}
	cfg.EmailSender = os.Getenv("EMAIL_SENDER")
	cfg.EmailPassword = os.Getenv("EMAIL_PASSWORD")

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
