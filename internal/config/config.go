package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Dataset   DatasetConfig
	Search    SearchConfig
	Cache     CacheConfig
	Logging   LoggingConfig
	SearchLog SearchLogConfig

	// warnings collected while reading malformed values; logged once a logger exists
	Warnings []string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// DatasetConfig holds the location of the listings file
type DatasetConfig struct {
	Path  string // .csv or .xlsx
	Sheet string // worksheet name for .xlsx, first sheet when empty
}

// SearchConfig holds search-related configuration
type SearchConfig struct {
	DefaultLimit   int
	MaxLimit       int
	DedupeProjects bool
}

// CacheConfig holds the response cache configuration
type CacheConfig struct {
	Enabled bool
	MaxSize int64
	TTL     time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// SearchLogConfig holds PostgreSQL search log configuration.
// The search log is disabled when DSN is empty.
type SearchLogConfig struct {
	DSN                string
	MaxConnections     int
	MaxIdleConnections int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Server = ServerConfig{
		Port:           cfg.getEnvAsInt("SERVER_PORT", 8080),
		Host:           getEnv("SERVER_HOST", "0.0.0.0"),
		GinMode:        getEnv("GIN_MODE", "release"),
		AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS"),
		AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
	}
	cfg.Dataset = DatasetConfig{
		Path:  getEnv("DATASET_PATH", "data/properties.csv"),
		Sheet: getEnv("DATASET_SHEET", ""),
	}
	cfg.Search = SearchConfig{
		DefaultLimit:   cfg.getEnvAsInt("SEARCH_DEFAULT_LIMIT", 10),
		MaxLimit:       cfg.getEnvAsInt("SEARCH_MAX_LIMIT", 100),
		DedupeProjects: cfg.getEnvAsBool("SEARCH_DEDUPE_PROJECTS", true),
	}
	cfg.Cache = CacheConfig{
		Enabled: cfg.getEnvAsBool("CACHE_ENABLED", true),
		MaxSize: int64(cfg.getEnvAsInt("CACHE_MAX_SIZE", 1000)),
		TTL:     time.Duration(cfg.getEnvAsInt("CACHE_TTL_SECONDS", 300)) * time.Second,
	}
	cfg.Logging = LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "json"),
	}
	cfg.SearchLog = SearchLogConfig{
		DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
		MaxConnections:     cfg.getEnvAsInt("PG_MAX_CONNECTIONS", 5),
		MaxIdleConnections: cfg.getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 2),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would make the service misbehave
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT out of range: %d", c.Server.Port))
	}
	if c.Dataset.Path == "" {
		errs = append(errs, errors.New("DATASET_PATH must be set"))
	}
	if c.Search.DefaultLimit <= 0 {
		errs = append(errs, fmt.Errorf("SEARCH_DEFAULT_LIMIT must be positive, got %d", c.Search.DefaultLimit))
	}
	if c.Search.MaxLimit < c.Search.DefaultLimit {
		errs = append(errs, fmt.Errorf("SEARCH_MAX_LIMIT (%d) is below SEARCH_DEFAULT_LIMIT (%d)",
			c.Search.MaxLimit, c.Search.DefaultLimit))
	}
	if c.Cache.Enabled && c.Cache.MaxSize <= 0 {
		errs = append(errs, fmt.Errorf("CACHE_MAX_SIZE must be positive, got %d", c.Cache.MaxSize))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid integer value for %s, using default %d", key, defaultValue))
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid boolean value for %s, using default %t", key, defaultValue))
		return defaultValue
	}
	return value
}
