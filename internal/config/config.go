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
	App    AppConfig
	Redis  RedisConfig
	Gemini GeminiConfig
	JWT    JWTConfig
}

type AppConfig struct {
	Environment string
	HTTPPort    string
	CORSOrigin  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		Environment: opt("APP_ENV"),
		HTTPPort:    opt("HTTP_PORT"),
		CORSOrigin:  opt("CORS_ORIGIN"),
	}
	if cfg.App.HTTPPort == "" {
		cfg.App.HTTPPort = "3001"
	}
	if cfg.App.CORSOrigin == "" {
		cfg.App.CORSOrigin = "http://localhost:3000"
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
	}

	cfg.Gemini = GeminiConfig{
		APIKey: req("GEMINI_API_KEY"),
		Model:  opt("GEMINI_MODEL"),
	}

	cfg.JWT = JWTConfig{
		Secret:    req("JWT_SECRET"),
		ExpiresIn: durationFromEnv("JWT_EXPIRES_IN_HOURS", 24*time.Hour),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return fallback
	}
	return time.Duration(hours) * time.Hour
}
