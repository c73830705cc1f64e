package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr       = ":8080"
	defaultRequestTimeout = "5s"
	defaultLatency        = "0s"
	defaultCacheEnabled   = "true"
	defaultCacheSize      = "1000"
	defaultCacheTTL       = "5m"
	defaultCacheBackend   = CacheBackendNone
	defaultMemcachedHost  = "localhost:11211"
	defaultRedisAddr      = "localhost:6379"
	defaultRedisDB        = "0"
	defaultRemoteTTL      = "15m"
	defaultCORSOrigins    = "http://localhost:3000,http://localhost:5173,http://127.0.0.1:3000,http://127.0.0.1:5173"
)

const (
	CacheBackendNone      = "none"
	CacheBackendMemcached = "memcached"
	CacheBackendRedis     = "redis"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	DatabaseURL    string
	CORSOrigins    []string
	RequestTimeout time.Duration
	Latency        LatencyConfig
	Cache          CacheConfig
}

// LatencyConfig holds the artificial round-trip delay applied per operation.
type LatencyConfig struct {
	List     time.Duration
	Get      time.Duration
	Featured time.Duration
	Search   time.Duration
	Submit   time.Duration
}

type CacheConfig struct {
	Enabled       bool
	Size          int64
	TTL           time.Duration
	Backend       string
	MemcachedHost string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RemoteTTL     time.Duration
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)
	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.CORSOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins))

	var err error
	if cfg.RequestTimeout, err = parseDurationEnv("REQUEST_TIMEOUT", defaultRequestTimeout); err != nil {
		return nil, err
	}

	latencies := []struct {
		name string
		dst  *time.Duration
	}{
		{"LATENCY_LIST", &cfg.Latency.List},
		{"LATENCY_GET", &cfg.Latency.Get},
		{"LATENCY_FEATURED", &cfg.Latency.Featured},
		{"LATENCY_SEARCH", &cfg.Latency.Search},
		{"LATENCY_SUBMIT", &cfg.Latency.Submit},
	}
	for _, l := range latencies {
		if *l.dst, err = parseDurationEnv(l.name, defaultLatency); err != nil {
			return nil, err
		}
	}

	cfg.Cache.Enabled = parseBoolEnv("CACHE_ENABLED", defaultCacheEnabled)
	size, err := parseIntEnv("CACHE_SIZE", defaultCacheSize)
	if err != nil {
		return nil, err
	}
	cfg.Cache.Size = int64(size)
	if cfg.Cache.TTL, err = parseDurationEnv("CACHE_TTL", defaultCacheTTL); err != nil {
		return nil, err
	}
	cfg.Cache.Backend = strings.ToLower(strings.TrimSpace(getEnv("CACHE_BACKEND", defaultCacheBackend)))
	cfg.Cache.MemcachedHost = strings.TrimSpace(getEnv("MEMCACHED_HOST", defaultMemcachedHost))
	cfg.Cache.RedisAddr = strings.TrimSpace(getEnv("REDIS_ADDR", defaultRedisAddr))
	cfg.Cache.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if cfg.Cache.RedisDB, err = parseIntEnv("REDIS_DB", defaultRedisDB); err != nil {
		return nil, err
	}
	if cfg.Cache.RemoteTTL, err = parseDurationEnv("CACHE_REMOTE_TTL", defaultRemoteTTL); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s addr=%s database=%t cache=%t backend=%s",
		cfg.AppEnv, cfg.HTTPAddr, cfg.DatabaseURL != "", cfg.Cache.Enabled, cfg.Cache.Backend)

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be > 0")
	}
	for name, d := range map[string]time.Duration{
		"LATENCY_LIST":     cfg.Latency.List,
		"LATENCY_GET":      cfg.Latency.Get,
		"LATENCY_FEATURED": cfg.Latency.Featured,
		"LATENCY_SEARCH":   cfg.Latency.Search,
		"LATENCY_SUBMIT":   cfg.Latency.Submit,
	} {
		if d < 0 {
			return fmt.Errorf("%s must be >= 0", name)
		}
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.Size <= 0 {
			return fmt.Errorf("CACHE_SIZE must be > 0")
		}
		if cfg.Cache.TTL <= 0 {
			return fmt.Errorf("CACHE_TTL must be > 0")
		}
	}

	switch cfg.Cache.Backend {
	case CacheBackendNone:
	case CacheBackendMemcached:
		if cfg.Cache.MemcachedHost == "" {
			return fmt.Errorf("MEMCACHED_HOST must be set when CACHE_BACKEND=memcached")
		}
	case CacheBackendRedis:
		if cfg.Cache.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR must be set when CACHE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of: none, memcached, redis")
	}
	if cfg.Cache.Backend != CacheBackendNone && !cfg.Cache.Enabled {
		return fmt.Errorf("CACHE_BACKEND=%s requires CACHE_ENABLED=true", cfg.Cache.Backend)
	}

	if isProdLike(cfg.AppEnv) {
		for _, o := range cfg.CORSOrigins {
			if o == "*" {
				return fmt.Errorf("in prod/release CORS_ALLOWED_ORIGINS must not contain *")
			}
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
