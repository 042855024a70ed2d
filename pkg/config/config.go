// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: All knobs are injected into the services at construction, nothing is read at runtime

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Research contains aggregation settings
	Research ResearchConfig

	// LogLevel controls logger verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration.
type CacheConfig struct {
	// Type specifies the cache backend (memory/sqlite/redis)
	Type string

	// SQLite contains file cache configuration
	SQLite SQLiteConfig

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// SQLiteConfig holds the file cache configuration.
type SQLiteConfig struct {
	// Path is the cache database file location
	Path string
}

// RedisConfig holds Redis-specific configuration.
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration.
type MemoryConfig struct {
	// CleanupIntervalSeconds is how often expired entries are purged
	CleanupIntervalSeconds int
}

// ResearchConfig holds the aggregation settings.
type ResearchConfig struct {
	// CacheTTLHours is the validity window of cached responses
	CacheTTLHours int

	// AdapterTimeoutSeconds bounds each source adapter call
	AdapterTimeoutSeconds int

	// NewsFeedURL is the tax-news RSS feed; empty disables the feed
	// adapter
	NewsFeedURL string
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "research-cache.db"),
			},
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				CleanupIntervalSeconds: getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP_SECONDS", 600),
			},
		},
		Research: ResearchConfig{
			CacheTTLHours:         getEnvAsIntOrDefault("CACHE_TTL_HOURS", 24),
			AdapterTimeoutSeconds: getEnvAsIntOrDefault("ADAPTER_TIMEOUT_SECONDS", 15),
			NewsFeedURL:           getEnvOrDefault("NEWS_FEED_URL", "https://www.haufe.de/steuern/rss"),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a
// default.
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "sqlite", "redis":
	default:
		return errors.New("cache type must be 'memory', 'sqlite' or 'redis'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Research.CacheTTLHours < 1 {
		return errors.New("cache TTL must be at least 1 hour")
	}

	if c.Research.AdapterTimeoutSeconds < 1 {
		return errors.New("adapter timeout must be at least 1 second")
	}

	return nil
}
