package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is an in-memory Cache used to test the service layer
type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memoryCache) DeletePattern(ctx context.Context, pattern string) error {
	// good enough for tests: "prefix:*" wipes everything
	m.data = map[string][]byte{}
	return nil
}

func (m *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func (m *memoryCache) Close() error { return nil }

func enabledConfig() *Config {
	return &Config{Enabled: true, Prefix: "test", TTL: time.Minute}
}

func TestCacheRoundTrip(t *testing.T) {
	svc := NewGenericCacheService(newMemoryCache(), enabledConfig())
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, svc.CacheData(ctx, "key1", payload{Name: "waveline", Count: 3}, 0))

	var got payload
	require.NoError(t, svc.GetCached(ctx, "key1", &got))
	assert.Equal(t, "waveline", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestGetCached_Miss(t *testing.T) {
	svc := NewGenericCacheService(newMemoryCache(), enabledConfig())

	var got map[string]interface{}
	err := svc.GetCached(context.Background(), "absent", &got)

	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestDisabledServiceIsNoOp(t *testing.T) {
	svc := NewGenericCacheService(newMemoryCache(), &Config{Enabled: false})
	ctx := context.Background()

	assert.ErrorIs(t, svc.CacheData(ctx, "k", "v", time.Minute), ErrCacheDisabled)

	var got string
	assert.ErrorIs(t, svc.GetCached(ctx, "k", &got), ErrCacheDisabled)
}

func TestNilServiceIsSafe(t *testing.T) {
	var svc *GenericCacheService

	assert.False(t, svc.IsEnabled())
	assert.ErrorIs(t, svc.CacheData(context.Background(), "k", "v", time.Minute), ErrCacheDisabled)
	svc.InvalidatePattern(context.Background(), "*")
}

func TestInvalidatePattern(t *testing.T) {
	backend := newMemoryCache()
	svc := NewGenericCacheService(backend, enabledConfig())
	ctx := context.Background()

	require.NoError(t, svc.CacheData(ctx, "posts:feed:1", []string{"a"}, 0))
	svc.InvalidatePattern(ctx, "posts:*")

	var got []string
	assert.Error(t, svc.GetCached(ctx, "posts:feed:1", &got))
}

func TestGenerateHashKey_Deterministic(t *testing.T) {
	svc := NewGenericCacheService(newMemoryCache(), enabledConfig())

	k1 := svc.GenerateHashKey("posts", map[string]interface{}{"owner": "a", "limit": 10})
	k2 := svc.GenerateHashKey("posts", map[string]interface{}{"limit": 10, "owner": "a"})
	k3 := svc.GenerateHashKey("posts", map[string]interface{}{"limit": 20, "owner": "a"})

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}
