package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zoobzio/clockz"

	"redline-garage/pitwall/internal/api"
	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/config"
	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/db"
	"redline-garage/pitwall/internal/logging"
	"redline-garage/pitwall/internal/metrics"
	"redline-garage/pitwall/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Pitwall starting up",
		"environment", cfg.AppEnv,
		"cache_backend", cfg.CacheBackend,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	dsn := cfg.Postgres.DSN()

	// Connect to DB with sqlx
	sqlxDB, err := db.InitPostgres(dsn)
	if err != nil {
		logging.Fatal("Failed to connect to Postgres (sqlx)", "error", err.Error())
	}
	defer sqlxDB.Close()

	// Connect to DB with GORM
	gormDB, err := db.InitPostgresORM(dsn)
	if err != nil {
		logging.Fatal("Failed to connect to Postgres (GORM)", "error", err.Error())
	}

	if !cfg.IsProduction() {
		if err := db.Migrate(gormDB); err != nil {
			logging.Fatal("Schema migration failed", "error", err.Error())
		}
		logging.Info("Schema migrated")
	}

	cache := newCache(cfg)
	defer cache.Close()

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	deps, err := api.InitDependencies(cfg, gormDB, sqlxDB, cache, metricsReg, clockz.RealClock)
	if err != nil {
		logging.Fatal("Failed to initialize dependencies", "error", err.Error())
	}

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, cfg, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info("Server starting", "port", cfg.HTTPPort, "environment", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("Server failed", "error", err.Error())
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logging.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error("Server shutdown error", "error", err.Error())
	}
}

func newCache(cfg *config.Config) common.CacheInterface {
	if cfg.CacheBackend == "redis" {
		client := common.NewRedisClient(cfg.Redis)
		return common.NewRedisCacheService(client, constants.RedisKeyPrefix)
	}
	return common.NewCacheService(cfg.StatsCacheTTL, 2*cfg.StatsCacheTTL)
}
