package config

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"os"
	"strconv"
	"strings"
	"time"
	"uz-departures/uz"
)

type Config struct {
	UZBaseURL         string         `validate:"required,url"`
	Stations          []string       `validate:"required_without=StationsFile"`
	StationsFile      string         `validate:"required_without=Stations"`
	RedisAddress      string         `validate:"required,hostname_port"`
	ScheduleQueueName string         `validate:"required"`
	BoardRows         string         `validate:"omitempty,numeric"`
	NumWorkers        int            `validate:"gt=0"`
	PollInterval      time.Duration  `validate:"gte=1s"`
	HealthAddress     string         `validate:"required"`
	Location          *time.Location `validate:"-"`
}

func Load() (*Config, error) {
	// Load .env file only if not in k8s environment
	if os.Getenv("KUBERNETES_SERVICE_HOST") == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	redisAddress, err := getEnv("REDIS_ADDRESS")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		UZBaseURL:         getEnvDefault("UZ_BASE_URL", uz.DefaultBaseURL),
		Stations:          splitList(os.Getenv("UZ_STATIONS")),
		StationsFile:      os.Getenv("UZ_STATIONS_FILE"),
		RedisAddress:      redisAddress,
		ScheduleQueueName: getEnvDefault("SCHEDULE_QUEUE_NAME", "uz-departure-boards"),
		BoardRows:         os.Getenv("BOARD_ROWS"),
		HealthAddress:     getEnvDefault("HEALTH_ADDRESS", ":8080"),
	}

	if cfg.NumWorkers, err = strconv.Atoi(getEnvDefault("NUM_WORKERS", "2")); err != nil {
		return nil, fmt.Errorf("NUM_WORKERS: %w", err)
	}

	if cfg.PollInterval, err = time.ParseDuration(getEnvDefault("POLL_INTERVAL", "1m")); err != nil {
		return nil, fmt.Errorf("POLL_INTERVAL: %w", err)
	}

	cfg.Location = time.Local
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		if cfg.Location, err = time.LoadLocation(tz); err != nil {
			return nil, fmt.Errorf("TIMEZONE: %w", err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func getEnv(key string) (string, error) {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value, nil
	}
	return "", errors.New(fmt.Sprintf("Environment variable %s is not set", key))
}

func getEnvDefault(key, fallback string) string {
	if value, err := getEnv(key); err == nil {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
