package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the marketplace backend.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - HTTP: The public API server settings.
// - MonitoringPort: The port of the health and metrics server.
// - Geocoder: Settings of the background geocoding worker.
// - AI: Settings of the OpenAI-compatible advisor backend.
// - Ranking: Defaults applied to matchmaking queries.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env            string
	HTTP           HTTPConfig
	MonitoringPort int
	Geocoder       GeocoderConfig
	AI             AIConfig
	Ranking        RankingConfig
	Database       PostgresConfig
}

// HTTPConfig configures the public API server.
type HTTPConfig struct {
	Port           int      // Port is the public API port.
	AllowedOrigins []string // AllowedOrigins for CORS; empty allows every origin.
}

// GeocoderConfig configures the geocoding worker.
type GeocoderConfig struct {
	ProviderType string        // ProviderType specifies which geocoding provider to use (google, nominatim).
	APIKey       string        // APIKey is required by the Google provider.
	Workers      int           // Workers is the number of concurrent geocoding goroutines.
	Interval     time.Duration // Interval between two geocoding passes.
	RateLimit    int           // RateLimit is the number of provider requests per second.
	Region       string        // Region is the country code lookups are biased to.
}

// AIConfig configures the advisor.
type AIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// RankingConfig holds matchmaking defaults.
type RankingConfig struct {
	DefaultLimit  int
	MaxDistanceKM float64
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// bindings maps configuration keys to their environment variable and default value.
var bindings = []struct {
	key, env, def string
}{
	{"env", "ECOHUB_ENV", "production"},
	{"http.port", "ECOHUB_HTTP_PORT", "5000"},
	{"http.allowed_origins", "ECOHUB_ALLOWED_ORIGINS", ""},
	{"monitoring.port", "ECOHUB_HEALTH_PORT", "8080"},
	{"geocoder.type", "ECOHUB_GEOCODER_TYPE", "nominatim"},
	{"geocoder.api_key", "ECOHUB_GEOCODER_KEY", ""},
	{"geocoder.workers", "ECOHUB_GEOCODER_WORKERS", "4"},
	{"geocoder.interval", "ECOHUB_GEOCODER_INTERVAL", "5m"},
	{"geocoder.rate_limit", "ECOHUB_GEOCODER_RATE_LIMIT", "1"},
	{"geocoder.region", "ECOHUB_GEOCODER_REGION", "ke"},
	{"ai.api_key", "OPENAI_API_KEY", ""},
	{"ai.base_url", "OPENAI_BASE_URL", ""},
	{"ai.model", "ECOHUB_AI_MODEL", "gpt-3.5-turbo"},
	{"ai.timeout", "ECOHUB_AI_TIMEOUT", "25s"},
	{"ranking.default_limit", "ECOHUB_RANKING_LIMIT", "10"},
	{"ranking.max_distance_km", "ECOHUB_RANKING_MAX_DISTANCE_KM", "50"},
	{"postgres.host", "DB_HOST", ""},
	{"postgres.port", "DB_PORT", "5432"},
	{"postgres.user", "DB_USERNAME", ""},
	{"postgres.password", "DB_PASSWORD", ""},
	{"postgres.db_name", "DB_NAME", ""},
}

// MustLoad loads the configuration and returns a Config struct.
// Values come from defaults, then the optional YAML file named by ECOHUB_CONFIG_FILE,
// then the environment (a .env file is loaded first when present).
// It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	for _, b := range bindings {
		v.SetDefault(b.key, b.def)
		_ = v.BindEnv(b.key, b.env)
	}

	if path := os.Getenv("ECOHUB_CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	httpPort, err := strconv.Atoi(v.GetString("http.port"))
	if err != nil {
		panic("failed to parse port for http server from configuration")
	}

	healthPort, err := strconv.Atoi(v.GetString("monitoring.port"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	interval, err := time.ParseDuration(v.GetString("geocoder.interval"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	workers, err := strconv.Atoi(v.GetString("geocoder.workers"))
	if err != nil || workers < 1 {
		panic("failed to parse workers from configuration, must be a positive integer")
	}

	rateLimit, err := strconv.Atoi(v.GetString("geocoder.rate_limit"))
	if err != nil || rateLimit < 1 {
		panic("failed to parse geocoder rate limit from configuration, must be a positive integer")
	}

	aiTimeout, err := time.ParseDuration(v.GetString("ai.timeout"))
	if err != nil {
		panic("failed to parse ai timeout from configuration")
	}

	rankingLimit, err := strconv.Atoi(v.GetString("ranking.default_limit"))
	if err != nil || rankingLimit < 1 {
		panic("failed to parse ranking limit from configuration, must be a positive integer")
	}

	maxDistance, err := strconv.ParseFloat(v.GetString("ranking.max_distance_km"), 64)
	if err != nil || maxDistance <= 0 {
		panic("failed to parse ranking max distance from configuration, must be a positive number")
	}

	return &Config{
		Env: v.GetString("env"),
		HTTP: HTTPConfig{
			Port:           httpPort,
			AllowedOrigins: splitList(v.GetString("http.allowed_origins")),
		},
		MonitoringPort: healthPort,
		Geocoder: GeocoderConfig{
			ProviderType: v.GetString("geocoder.type"),
			APIKey:       v.GetString("geocoder.api_key"),
			Workers:      workers,
			Interval:     interval,
			RateLimit:    rateLimit,
			Region:       strings.ToLower(strings.TrimSpace(v.GetString("geocoder.region"))),
		},
		AI: AIConfig{
			APIKey:  v.GetString("ai.api_key"),
			BaseURL: v.GetString("ai.base_url"),
			Model:   v.GetString("ai.model"),
			Timeout: aiTimeout,
		},
		Ranking: RankingConfig{
			DefaultLimit:  rankingLimit,
			MaxDistanceKM: maxDistance,
		},
		Database: PostgresConfig{
			Host:     v.GetString("postgres.host"),
			Port:     v.GetString("postgres.port"),
			User:     v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			Name:     v.GetString("postgres.db_name"),
		},
	}
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
