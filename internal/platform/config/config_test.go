package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "waveline", cfg.Database.Mongo.Database)
	assert.Equal(t, "localhost", cfg.Database.Mongo.Host)
	assert.Equal(t, 27017, cfg.Database.Mongo.Port)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MONGO_HOST", "db.internal")
	t.Setenv("MONGO_DATABASE", "social")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Mongo.Host)
	assert.Equal(t, "social", cfg.Database.Mongo.Database)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
}

func TestEnvHelpers_IgnoreMalformedValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("CACHE_ENABLED", "not-a-bool")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Cache.Enabled)
}
