package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr         = ":8080"
	defaultDatabaseURL  = "bitewrap.db"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultRefreshPep   = "change-me-refresh-pepper"
	defaultJWTAccessTTL = "15m"
	defaultRefreshTTL   = "720h"
)

type Config struct {
	AppEnv             string
	Addr               string
	DatabaseURL        string
	JWTSecret          string
	JWTAccessTTL       time.Duration
	RefreshTokenPepper string
	RefreshTTL         time.Duration
	PlacesAPIKey       string
	PlacesBaseURL      string
}

// Load reads configuration from the environment, with a best-effort
// .env load for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:             strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", "dev"))),
		Addr:               getEnv("ADDR", defaultAddr),
		DatabaseURL:        getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:          strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		RefreshTokenPepper: strings.TrimSpace(getEnv("REFRESH_TOKEN_PEPPER", defaultRefreshPep)),
		PlacesAPIKey:       strings.TrimSpace(os.Getenv("PLACES_API_KEY")),
		PlacesBaseURL:      strings.TrimSpace(os.Getenv("PLACES_BASE_URL")),
	}

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.RefreshTTL, err = parseDurationEnv("REFRESH_TTL", defaultRefreshTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.RefreshTTL <= 0 {
		return fmt.Errorf("REFRESH_TTL must be > 0")
	}
	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.RefreshTokenPepper, defaultRefreshPep) {
			return fmt.Errorf("in prod/release REFRESH_TOKEN_PEPPER must be set and not default")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
