package utils

import (
	"context"
	"fmt"
	"time"

	"findmylocal/config"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to the configured Redis server on the given logical DB.
func NewRedisClient(ctx context.Context, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis db %d: %w", db, err)
	}
	return client, nil
}

// NewStoreClient returns the client backing the per-client key/value store.
func NewStoreClient(ctx context.Context) (*redis.Client, error) {
	return NewRedisClient(ctx, config.AppConfig.RedisStoreDB)
}

// NewOTPClient returns the client backing the OTP cache.
func NewOTPClient(ctx context.Context) (*redis.Client, error) {
	return NewRedisClient(ctx, config.AppConfig.RedisOTPDB)
}
