package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App            AppConfig
	Server         ServerConfig
	Database       DatabaseConfig
	Recommendation RecommendationConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RecommendationConfig struct {
	BaseURL           string
	BasicAuthUsername string
	BasicAuthPassword string
	Timeout           time.Duration
	CacheTTL          time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	recoTimeout, err := time.ParseDuration(getEnv("RECOMMENDATION_TIMEOUT", "5s"))
	if err != nil {
		return nil, errors.New("invalid recommendation timeout")
	}

	recoCacheTTL, err := time.ParseDuration(getEnv("RECOMMENDATION_CACHE_TTL", "24h"))
	if err != nil {
		return nil, errors.New("invalid recommendation cache ttl")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Car Market API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "car_market"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Recommendation: RecommendationConfig{
			BaseURL:           getEnv("RECOMMENDATION_BASE_URL", "https://bravado-images-production.s3.amazonaws.com/recomended_cars.json"),
			BasicAuthUsername: getEnv("RECOMMENDATION_BASIC_AUTH_USERNAME", ""),
			BasicAuthPassword: getEnv("RECOMMENDATION_BASIC_AUTH_PASSWORD", ""),
			Timeout:           recoTimeout,
			CacheTTL:          recoCacheTTL,
		},
	}

	if cfg.Recommendation.BaseURL == "" {
		return nil, errors.New("missing recommendation base url")
	}

	if cfg.Database.Name == "" {
		return nil, errors.New("missing database name")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
