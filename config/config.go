package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL      string
	ServerPort       int
	LogLevel         slog.Level
	AllowedOrigins   []string
	DBConnectTimeout time.Duration
	MigrateOnStart   bool

	R2 R2Config
}

// R2Config is only needed when fixtures are read from a Cloudflare R2 bucket.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
}

func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	port, err := parsePort(getEnv("SERVER_PORT", "8000"))
	if err != nil {
		return nil, err
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT environment variable: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("DB_CONNECT_TIMEOUT must be positive, got %s", timeout)
	}

	migrate, err := strconv.ParseBool(getEnv("MIGRATE_ON_START", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid MIGRATE_ON_START environment variable: %w", err)
	}

	cfg := &Config{
		DatabaseURL:      dbURL,
		ServerPort:       port,
		LogLevel:         level,
		AllowedOrigins:   splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		DBConnectTimeout: timeout,
		MigrateOnStart:   migrate,
		R2: R2Config{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("R2_BUCKET_NAME"),
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parsePort(portStr string) (int, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}
	return port, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
	}
	return level, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
