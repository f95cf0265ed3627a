package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// keeps godotenv.Load from picking up a developer's .env
func inEmptyDir(t *testing.T) {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(dir) })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"KUBERNETES_SERVICE_HOST", "UZ_BASE_URL", "UZ_STATIONS", "UZ_STATIONS_FILE", "REDIS_ADDRESS",
		"SCHEDULE_QUEUE_NAME", "BOARD_ROWS", "NUM_WORKERS", "POLL_INTERVAL", "TIMEZONE", "HEALTH_ADDRESS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	inEmptyDir(t)
	clearEnv(t)
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("UZ_STATIONS", "2200001, Lviv,,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://app.uz.gov.ua/api/station-boards", cfg.UZBaseURL)
	assert.Equal(t, []string{"2200001", "Lviv"}, cfg.Stations)
	assert.Equal(t, "uz-departure-boards", cfg.ScheduleQueueName)
	assert.Equal(t, 2, cfg.NumWorkers)
	assert.Equal(t, time.Minute, cfg.PollInterval)
	assert.Equal(t, time.Local, cfg.Location)
	assert.Equal(t, ":8080", cfg.HealthAddress)
	assert.Equal(t, "", cfg.BoardRows)
}

func TestLoad_FromDotEnv(t *testing.T) {
	inEmptyDir(t)
	clearEnv(t)
	os.Unsetenv("REDIS_ADDRESS")
	os.Unsetenv("UZ_STATIONS_FILE")
	os.Unsetenv("NUM_WORKERS")

	err := os.WriteFile(filepath.Join(".", ".env"), []byte("REDIS_ADDRESS=redis:6379\nUZ_STATIONS_FILE=stations.yml\nNUM_WORKERS=4\n"), 0644)
	require.NoError(t, err)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis:6379", cfg.RedisAddress)
	assert.Equal(t, "stations.yml", cfg.StationsFile)
	assert.Equal(t, 4, cfg.NumWorkers)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]map[string]string{
		"missing redis":    {"UZ_STATIONS": "2200001"},
		"missing stations": {"REDIS_ADDRESS": "localhost:6379"},
		"bad workers":      {"REDIS_ADDRESS": "localhost:6379", "UZ_STATIONS": "1", "NUM_WORKERS": "many"},
		"zero workers":     {"REDIS_ADDRESS": "localhost:6379", "UZ_STATIONS": "1", "NUM_WORKERS": "0"},
		"bad interval":     {"REDIS_ADDRESS": "localhost:6379", "UZ_STATIONS": "1", "POLL_INTERVAL": "often"},
		"short interval":   {"REDIS_ADDRESS": "localhost:6379", "UZ_STATIONS": "1", "POLL_INTERVAL": "10ms"},
		"bad timezone":     {"REDIS_ADDRESS": "localhost:6379", "UZ_STATIONS": "1", "TIMEZONE": "Mars/Olympus"},
		"bad rows":         {"REDIS_ADDRESS": "localhost:6379", "UZ_STATIONS": "1", "BOARD_ROWS": "lots"},
		"bad base url":     {"REDIS_ADDRESS": "localhost:6379", "UZ_STATIONS": "1", "UZ_BASE_URL": "not a url"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			inEmptyDir(t)
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
