package bootstrap

import (
	"context"

	"stayline/internal/infra/cache"
	"stayline/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewRoomTypeCache,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewRoomTypeCache(client *redis.Client, cfg config.Config) *cache.RoomTypeCache {
	return cache.NewRoomTypeCache(client, cfg.Redis.CacheTTL)
}
