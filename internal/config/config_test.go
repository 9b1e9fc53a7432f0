package config_test

import (
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/ecohub/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("ECOHUB_ENV", "local")
	t.Setenv("ECOHUB_GEOCODER_INTERVAL", "10m")
	t.Setenv("ECOHUB_GEOCODER_KEY", "testAPIKey")
	t.Setenv("ECOHUB_GEOCODER_REGION", " UG ")
	t.Setenv("ECOHUB_ALLOWED_ORIGINS", "http://localhost:3000, https://ecohub.example ,")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.Equal(t, 10*time.Minute, cfg.Geocoder.Interval)
	assert.Equal(t, "testAPIKey", cfg.Geocoder.APIKey)
	assert.Equal(t, "ug", cfg.Geocoder.Region)
	assert.Equal(t, []string{"http://localhost:3000", "https://ecohub.example"}, cfg.HTTP.AllowedOrigins)
}

func TestMustLoad_Defaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Empty(t, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 8080, cfg.MonitoringPort)
	assert.Equal(t, "nominatim", cfg.Geocoder.ProviderType)
	assert.Equal(t, 4, cfg.Geocoder.Workers)
	assert.Equal(t, 5*time.Minute, cfg.Geocoder.Interval)
	assert.Equal(t, 1, cfg.Geocoder.RateLimit)
	assert.Equal(t, "ke", cfg.Geocoder.Region)
	assert.Equal(t, "gpt-3.5-turbo", cfg.AI.Model)
	assert.Equal(t, 25*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 10, cfg.Ranking.DefaultLimit)
	assert.InDelta(t, 50.0, cfg.Ranking.MaxDistanceKM, 1e-9)
	assert.Equal(t, "5432", cfg.Database.Port)
}

func TestMustLoad_ConfigFile(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", `
env: development
http:
  port: 7000
geocoder:
  type: google
  workers: 8
ranking:
  max_distance_km: 25.5
postgres:
  host: db.internal
`)
	t.Setenv("ECOHUB_CONFIG_FILE", file.Name())
	t.Setenv("ECOHUB_GEOCODER_WORKERS", "2")

	cfg := config.MustLoad()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 7000, cfg.HTTP.Port)
	assert.Equal(t, "google", cfg.Geocoder.ProviderType)
	assert.Equal(t, 2, cfg.Geocoder.Workers, "environment overrides the file")
	assert.InDelta(t, 25.5, cfg.Ranking.MaxDistanceKM, 1e-9)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestMustLoad_ConfigFileMissing(t *testing.T) {
	t.Setenv("ECOHUB_CONFIG_FILE", "/nonexistent/ecohub.yaml")

	assert.PanicsWithValue(t, "failed to read configuration file", func() {
		config.MustLoad()
	})
}

func TestMustLoad_IntervalError(t *testing.T) {
	t.Setenv("ECOHUB_GEOCODER_INTERVAL", "error_value")

	assert.PanicsWithValue(t, "failed to parse interval from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("ECOHUB_HEALTH_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for monitoring server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_HTTPPortError(t *testing.T) {
	t.Setenv("ECOHUB_HTTP_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for http server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_WorkersError(t *testing.T) {
	for _, value := range []string{"error_value", "0"} {
		t.Setenv("ECOHUB_GEOCODER_WORKERS", value)

		assert.PanicsWithValue(t, "failed to parse workers from configuration, must be a positive integer", func() {
			config.MustLoad()
		})
	}
}

func TestMustLoad_RateLimitError(t *testing.T) {
	t.Setenv("ECOHUB_GEOCODER_RATE_LIMIT", "-1")

	assert.PanicsWithValue(t,
		"failed to parse geocoder rate limit from configuration, must be a positive integer", func() {
			config.MustLoad()
		})
}

func TestMustLoad_AITimeoutError(t *testing.T) {
	t.Setenv("ECOHUB_AI_TIMEOUT", "soon")

	assert.PanicsWithValue(t, "failed to parse ai timeout from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_RankingErrors(t *testing.T) {
	t.Run("limit", func(t *testing.T) {
		t.Setenv("ECOHUB_RANKING_LIMIT", "ten")

		assert.PanicsWithValue(t,
			"failed to parse ranking limit from configuration, must be a positive integer", func() {
				config.MustLoad()
			})
	})

	t.Run("max distance", func(t *testing.T) {
		t.Setenv("ECOHUB_RANKING_MAX_DISTANCE_KM", "0")

		assert.PanicsWithValue(t,
			"failed to parse ranking max distance from configuration, must be a positive number", func() {
				config.MustLoad()
			})
	})
}
