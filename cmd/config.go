package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort       = "8080"
	defaultDBSslMode      = "disable"
	defaultJWTTTL         = 24 * time.Hour
	defaultPurgeSchedule  = "@every 1h"
	defaultPurgeRetention = 30 * 24 * time.Hour
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	PurgeSchedule  string
	PurgeRetention time.Duration

	LogLevel slog.Level
}

// LoadConfig reads the environment, after merging an optional .env file from
// envFile. Variables already present in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var missing []string
	required := func(key string) string {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" {
			missing = append(missing, key)
		}
		return value
	}

	config := Config{
		HTTPPort:      withDefault("HTTP_PORT", defaultHTTPPort),
		DBHost:        required("DB_HOST"),
		DBPort:        required("DB_PORT"),
		DBUser:        required("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        required("DB_NAME"),
		DBSslMode:     withDefault("DB_SSLMODE", defaultDBSslMode),
		JWTSecret:     required("JWT_SECRET"),
		PurgeSchedule: withDefault("PURGE_SCHEDULE", defaultPurgeSchedule),
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	var err error
	if config.JWTTTL, err = durationVariable("JWT_TTL", defaultJWTTTL); err != nil {
		return Config{}, err
	}
	if config.PurgeRetention, err = durationVariable("PURGE_RETENTION", defaultPurgeRetention); err != nil {
		return Config{}, err
	}
	if err = config.LogLevel.UnmarshalText([]byte(withDefault("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return config, nil
}

func withDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}
