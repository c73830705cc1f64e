package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"immoplace/internal/cache"
	"immoplace/internal/config"
	"immoplace/internal/database"
	"immoplace/internal/domain/property"
	"immoplace/internal/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Fatal("catalog: ", err)
	}

	store, err := property.NewStore(catalog)
	if err != nil {
		log.Fatal("catalog: ", err)
	}
	log.Printf("catalog ready: properties=%d agents=%d", store.Len(), len(store.Agents()))

	resultCache := newResultCache(cfg.Cache)
	var serviceCache property.ResultCache
	if resultCache != nil {
		defer resultCache.Close()
		serviceCache = resultCache
	}

	propertyService := property.NewService(store, serviceCache, property.Latency{
		List:     cfg.Latency.List,
		Get:      cfg.Latency.Get,
		Featured: cfg.Latency.Featured,
		Search:   cfg.Latency.Search,
		Submit:   cfg.Latency.Submit,
	})
	propertyHandler := property.NewHandler(propertyService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		gin.Logger(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.Timeout(cfg.RequestTimeout),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"properties": store.Len(),
		})
	})

	v1 := r.Group("/api/v1")
	propertyHandler.RegisterRoutes(v1)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// loadCatalog reads the catalog snapshot from DATABASE_URL when set, and
// falls back to the built-in catalog otherwise.
func loadCatalog(cfg *config.Config) ([]property.Property, error) {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL is empty, using built-in catalog")
		return property.DefaultCatalog()
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	defer sqlDB.Close()

	repo := property.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	catalog, err := repo.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		log.Println("catalog database is empty, using built-in catalog (run cmd/seed to populate it)")
		return property.DefaultCatalog()
	}
	return catalog, nil
}

// newResultCache builds the query cache. A remote backend that cannot be
// reached is logged and skipped.
func newResultCache(cfg config.CacheConfig) *cache.Layered {
	if !cfg.Enabled {
		return nil
	}

	var remote cache.Remote
	switch cfg.Backend {
	case config.CacheBackendMemcached:
		mc := cache.NewMemcached(cfg.MemcachedHost)
		if err := mc.Ping(); err != nil {
			log.Printf("cache_error op=connect backend=memcached host=%s error=%q", cfg.MemcachedHost, err)
		} else {
			remote = mc
		}
	case config.CacheBackendRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rc, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		cancel()
		if err != nil {
			log.Printf("cache_error op=connect backend=redis addr=%s error=%q", cfg.RedisAddr, err)
		} else {
			remote = rc
		}
	}

	log.Printf("query cache enabled: size=%d ttl=%s remote=%t", cfg.Size, cfg.TTL, remote != nil)

	return cache.NewLayered(cache.Options{
		Size:      cfg.Size,
		TTL:       cfg.TTL,
		RemoteTTL: cfg.RemoteTTL,
	}, remote)
}
