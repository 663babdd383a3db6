package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/unitedfins/inventory-api/pkg/config"
)

// NewClient crea el cliente Redis y verifica la conexión con un ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
