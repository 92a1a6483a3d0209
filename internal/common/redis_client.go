package common

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"redline-garage/pitwall/internal/config"
	"redline-garage/pitwall/internal/logging"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	addr := cfg.Addr()
	logging.Info("Initializing Redis client", "addr", addr, "db", cfg.DB)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Error("Failed to ping Redis", "addr", addr, "error", err)
		return client // connection pool will try to reconnect
	}

	logging.Info("Connected to Redis", "addr", addr)
	return client
}
