package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at boot.
type Config struct {
	AppEnv   string
	HTTPPort int

	Postgres PostgresConfig
	Redis    RedisConfig

	// CacheBackend is "redis" or "memory".
	CacheBackend  string
	StatsCacheTTL time.Duration

	JWTSecret string
	JWTIssuer string

	RateLimitRPS   float64
	RateLimitBurst int
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	DB       string
	Password string
}

// DSN builds the connection string shared by the sqlx and GORM handles.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", p.User, p.Password, p.Host, p.Port, p.DB)
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		CacheBackend: getEnv("CACHE_BACKEND", "memory"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTIssuer:    os.Getenv("JWT_ISSUER"),
		Postgres: PostgresConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			User:     os.Getenv("PG_USER"),
			DB:       os.Getenv("PG_DB"),
			Password: os.Getenv("PG_PASSWORD"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}

	var err error
	if cfg.HTTPPort, err = getInt("HTTP_PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 5); err != nil {
		return nil, err
	}
	if cfg.StatsCacheTTL, err = getDuration("STATS_CACHE_TTL", 2*time.Minute); err != nil {
		return nil, err
	}

	if cfg.CacheBackend != "redis" && cfg.CacheBackend != "memory" {
		return nil, fmt.Errorf("invalid CACHE_BACKEND %q: want redis or memory", cfg.CacheBackend)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
