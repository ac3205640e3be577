package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env      string
	HTTPPort string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTIssuer        string
	JWTAudience      string
	JWTAccessSecret  string
	JWTRefreshSecret string
	JWTAccessTTL     time.Duration
	JWTRefreshTTL    time.Duration

	ResetCodeTTL time.Duration

	NotifierMode string
	SMTPAddr     string
	SMTPFrom     string
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		JWTIssuer:        getEnv("JWT_ISSUER", "member-service"),
		JWTAudience:      getEnv("JWT_AUDIENCE", "member-service-api"),
		JWTAccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		JWTRefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		NotifierMode:     strings.ToLower(getEnv("NOTIFIER_MODE", "dev")),
		SMTPAddr:         os.Getenv("SMTP_ADDR"),
		SMTPFrom:         getEnv("SMTP_FROM", "no-reply@neutralpress.local"),
	}

	accessTTL, err := time.ParseDuration(getEnv("JWT_ACCESS_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("parse JWT_ACCESS_TTL: %w", err)
	}
	cfg.JWTAccessTTL = accessTTL

	refreshTTL, err := time.ParseDuration(getEnv("JWT_REFRESH_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("parse JWT_REFRESH_TTL: %w", err)
	}
	cfg.JWTRefreshTTL = refreshTTL

	resetTTL, err := time.ParseDuration(getEnv("RESET_CODE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("parse RESET_CODE_TTL: %w", err)
	}
	cfg.ResetCodeTTL = resetTTL

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []string
	if c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}
	if len(c.JWTAccessSecret) < 32 {
		errs = append(errs, "JWT_ACCESS_SECRET must be at least 32 chars")
	}
	if len(c.JWTRefreshSecret) < 32 {
		errs = append(errs, "JWT_REFRESH_SECRET must be at least 32 chars")
	}
	if c.JWTAccessSecret == c.JWTRefreshSecret {
		errs = append(errs, "JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}
	if c.JWTAccessTTL <= 0 || c.JWTAccessTTL > time.Hour {
		errs = append(errs, "JWT_ACCESS_TTL must be between 1s and 1h")
	}
	if c.JWTRefreshTTL <= 0 || c.JWTRefreshTTL > (30*24*time.Hour) {
		errs = append(errs, "JWT_REFRESH_TTL must be between 1s and 30d")
	}
	if c.ResetCodeTTL <= 0 || c.ResetCodeTTL > time.Hour {
		errs = append(errs, "RESET_CODE_TTL must be between 1s and 1h")
	}
	if c.NotifierMode != "dev" && c.NotifierMode != "smtp" {
		errs = append(errs, "NOTIFIER_MODE must be dev or smtp")
	}
	if c.NotifierMode == "smtp" && c.SMTPAddr == "" {
		errs = append(errs, "SMTP_ADDR is required when NOTIFIER_MODE=smtp")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
