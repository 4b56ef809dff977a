package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrKeyNotFound is returned when a key does not exist in the cache
	ErrKeyNotFound = errors.New("cache key not found")
	// ErrCacheDisabled is returned when the cache service is disabled
	ErrCacheDisabled = errors.New("cache is disabled")
	// ErrCacheUnavailable is returned when the cache backend cannot be reached
	ErrCacheUnavailable = errors.New("cache unavailable")
)

// Cache defines the interface for cache backends
type Cache interface {
	// Get retrieves a value from cache by key
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from cache by key
	Delete(ctx context.Context, key string) error

	// DeletePattern removes all keys matching the given pattern
	DeletePattern(ctx context.Context, pattern string) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// Close releases backend resources
	Close() error
}

// Config holds cache service configuration
type Config struct {
	Enabled bool
	Prefix  string
	TTL     time.Duration
	Redis   RedisConfig
}

// RedisConfig holds Redis backend configuration
type RedisConfig struct {
	Address      string
	Password     string
	Database     int
	PoolSize     int
	MinIdleConns int
	MaxConnAge   time.Duration
}

// DefaultConfig returns a disabled cache configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled: false,
		Prefix:  "waveline",
		TTL:     time.Hour,
	}
}
