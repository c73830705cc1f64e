package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"APP_ENV", "HTTP_ADDR", "DATABASE_URL", "CORS_ALLOWED_ORIGINS", "REQUEST_TIMEOUT",
		"LATENCY_LIST", "LATENCY_GET", "LATENCY_FEATURED", "LATENCY_SEARCH", "LATENCY_SUBMIT",
		"CACHE_ENABLED", "CACHE_SIZE", "CACHE_TTL", "CACHE_BACKEND", "MEMCACHED_HOST",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "CACHE_REMOTE_TTL",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Zero(t, cfg.Latency.List)
	assert.True(t, cfg.Cache.Enabled)
	assert.EqualValues(t, 1000, cfg.Cache.Size)
	assert.Equal(t, CacheBackendNone, cfg.Cache.Backend)
	assert.Contains(t, cfg.CORSOrigins, "http://localhost:5173")
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "Production")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://immo.example, https://admin.immo.example ,")
	t.Setenv("LATENCY_LIST", "500ms")
	t.Setenv("LATENCY_SEARCH", "600ms")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, []string{"https://immo.example", "https://admin.immo.example"}, cfg.CORSOrigins)
	assert.Equal(t, 500*time.Millisecond, cfg.Latency.List)
	assert.Equal(t, 600*time.Millisecond, cfg.Latency.Search)
	assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
	assert.Equal(t, 2, cfg.Cache.RedisDB)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"bad duration", map[string]string{"REQUEST_TIMEOUT": "soon"}},
		{"zero timeout", map[string]string{"REQUEST_TIMEOUT": "0s"}},
		{"negative latency", map[string]string{"LATENCY_GET": "-1s"}},
		{"bad cache size", map[string]string{"CACHE_SIZE": "many"}},
		{"unknown backend", map[string]string{"CACHE_BACKEND": "etcd"}},
		{"backend without cache", map[string]string{"CACHE_BACKEND": "memcached", "CACHE_ENABLED": "false"}},
		{"wildcard cors in prod", map[string]string{"APP_ENV": "prod", "CORS_ALLOWED_ORIGINS": "*"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
