package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Storage   StorageConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	Generator GeneratorConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// StorageConfig selects and configures the snapshot store driver.
type StorageConfig struct {
	Driver        string // memory | sqlite | redis | postgres
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PostgresDSN   string
	MaxConns      int32
	MinConns      int32
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
	BootstrapAdminEmail   string
	BootstrapAdminName    string
	BootstrapAdminPass    string
}

// GeneratorConfig controls synthetic seeding and the periodic feed.
type GeneratorConfig struct {
	SeedCount       int
	FeedEnabled     bool
	FeedIntervalSec int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "yatraflow"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Storage: StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", "memory"),
			SQLitePath:    getEnv("STORAGE_SQLITE_PATH", "yatraflow.db"),
			RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       redisDB,
			PostgresDSN:   os.Getenv("POSTGRES_DSN"),
			MaxConns:      int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:      int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
			BootstrapAdminEmail:   getEnv("AUTH_BOOTSTRAP_ADMIN_EMAIL", "admin@yatraflow.local"),
			BootstrapAdminName:    getEnv("AUTH_BOOTSTRAP_ADMIN_NAME", "Admin"),
			BootstrapAdminPass:    getEnv("AUTH_BOOTSTRAP_ADMIN_PASSWORD", "admin123"),
		},
		Generator: GeneratorConfig{
			SeedCount:       getEnvAsInt("GENERATOR_SEED_COUNT", 50),
			FeedEnabled:     getEnvAsBool("GENERATOR_FEED_ENABLED", false),
			FeedIntervalSec: getEnvAsInt("GENERATOR_FEED_INTERVAL_SECONDS", 2),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// FeedInterval returns the periodic feed tick interval.
func (g GeneratorConfig) FeedInterval() time.Duration {
	if g.FeedIntervalSec <= 0 {
		return 2 * time.Second
	}
	return time.Duration(g.FeedIntervalSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
