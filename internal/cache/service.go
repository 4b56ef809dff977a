package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/waveline-social/waveline/internal/pkg/log"
)

// GenericCacheService provides a generic caching service on top of a
// Cache backend. A nil service or a disabled config is safe to use:
// every operation becomes a no-op miss.
type GenericCacheService struct {
	cache  Cache
	config *Config
	stats  serviceStats
}

// serviceStats tracks cache service statistics with atomic operations
type serviceStats struct {
	hits   int64
	misses int64
	errors int64
	sets   int64
}

// NewGenericCacheService creates a new generic cache service
func NewGenericCacheService(cache Cache, config *Config) *GenericCacheService {
	if config == nil {
		config = DefaultConfig()
	}

	return &GenericCacheService{
		cache:  cache,
		config: config,
	}
}

// IsEnabled reports whether the service will actually hit a backend
func (gcs *GenericCacheService) IsEnabled() bool {
	return gcs != nil && gcs.config.Enabled && gcs.cache != nil
}

// GetCached retrieves and unmarshals cached data into the target interface
func (gcs *GenericCacheService) GetCached(ctx context.Context, key string, target interface{}) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}

	fullKey := gcs.buildKey(key)

	data, err := gcs.cache.Get(ctx, fullKey)
	if err != nil {
		atomic.AddInt64(&gcs.stats.misses, 1)
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		atomic.AddInt64(&gcs.stats.errors, 1)
		return fmt.Errorf("failed to unmarshal cached data: %w", err)
	}

	atomic.AddInt64(&gcs.stats.hits, 1)
	return nil
}

// CacheData marshals and stores data in the cache with the given TTL
func (gcs *GenericCacheService) CacheData(ctx context.Context, key string, data interface{}, ttl time.Duration) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}

	payload, err := json.Marshal(data)
	if err != nil {
		atomic.AddInt64(&gcs.stats.errors, 1)
		return fmt.Errorf("failed to marshal data for cache: %w", err)
	}

	if ttl <= 0 {
		ttl = gcs.config.TTL
	}

	fullKey := gcs.buildKey(key)
	if err := gcs.cache.Set(ctx, fullKey, payload, ttl); err != nil {
		atomic.AddInt64(&gcs.stats.errors, 1)
		return err
	}

	atomic.AddInt64(&gcs.stats.sets, 1)
	return nil
}

// Invalidate removes a single cache entry
func (gcs *GenericCacheService) Invalidate(ctx context.Context, key string) {
	if !gcs.IsEnabled() {
		return
	}
	if err := gcs.cache.Delete(ctx, gcs.buildKey(key)); err != nil {
		log.Warn("cache invalidate failed for key %s: %v", key, err)
	}
}

// InvalidatePattern removes all cache entries matching the pattern
func (gcs *GenericCacheService) InvalidatePattern(ctx context.Context, pattern string) {
	if !gcs.IsEnabled() {
		return
	}
	if err := gcs.cache.DeletePattern(ctx, gcs.buildKey(pattern)); err != nil {
		log.Warn("cache invalidate failed for pattern %s: %v", pattern, err)
	}
}

// GenerateHashKey builds a deterministic cache key from a parameter map.
// Parameters are sorted so the same query always hashes to the same key.
func (gcs *GenericCacheService) GenerateHashKey(prefix string, params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(fmt.Sprintf("%v", params[k]))
		sb.WriteString(";")
	}

	sum := sha256.Sum256([]byte(sb.String()))
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:16]))
}

func (gcs *GenericCacheService) buildKey(key string) string {
	if gcs.config.Prefix == "" {
		return key
	}
	return gcs.config.Prefix + ":" + key
}
