package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"stayline/internal/pkg/config"
	"stayline/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RoomTypeCache keeps per-hotel room type listings in redis with a TTL and
// degrades to an in-process map while redis is unreachable. The engine's
// admission control never reads it, so staleness can only affect listings.
type RoomTypeCache struct {
	client *redis.Client
	ttl    time.Duration

	mu       sync.RWMutex
	fallback map[uuid.UUID]memoryEntry
	down     bool
	downAt   time.Time
}

type memoryEntry struct {
	views     []queries.RoomTypeView
	expiresAt time.Time
}

const recoveryInterval = time.Minute

func NewRoomTypeCache(client *redis.Client, ttl time.Duration) *RoomTypeCache {
	return &RoomTypeCache{
		client:   client,
		ttl:      ttl,
		fallback: make(map[uuid.UUID]memoryEntry),
	}
}

func cacheKey(hotelID uuid.UUID) string {
	return "room_types:" + hotelID.String()
}

func (c *RoomTypeCache) Get(ctx context.Context, hotelID uuid.UUID) ([]queries.RoomTypeView, bool) {
	if c.redisUsable() {
		val, err := c.client.Get(ctx, cacheKey(hotelID)).Result()
		if err == nil {
			var views []queries.RoomTypeView
			if unmarshalErr := json.Unmarshal([]byte(val), &views); unmarshalErr == nil {
				return views, true
			}
			return nil, false
		}
		if err == redis.Nil {
			return nil, false
		}
		c.markDown(err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.fallback[hotelID]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.views, true
}

func (c *RoomTypeCache) Set(ctx context.Context, hotelID uuid.UUID, views []queries.RoomTypeView) {
	if c.redisUsable() {
		data, err := json.Marshal(views)
		if err != nil {
			return
		}
		if err := c.client.Set(ctx, cacheKey(hotelID), data, c.ttl).Err(); err == nil {
			return
		} else {
			c.markDown(err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.fallback[hotelID] = memoryEntry{views: views, expiresAt: time.Now().Add(c.ttl)}
}

func (c *RoomTypeCache) Invalidate(ctx context.Context, hotelID uuid.UUID) {
	if c.redisUsable() {
		if err := c.client.Del(ctx, cacheKey(hotelID)).Err(); err != nil {
			c.markDown(err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.fallback, hotelID)
}

// redisUsable reports whether redis should be tried, recovering after a
// cool-down once it has been marked down.
func (c *RoomTypeCache) redisUsable() bool {
	if c.client == nil {
		return false
	}

	c.mu.RLock()
	down := c.down
	downAt := c.downAt
	c.mu.RUnlock()

	if !down {
		return true
	}
	if time.Since(downAt) > recoveryInterval {
		c.mu.Lock()
		c.down = false
		c.mu.Unlock()
		return true
	}
	return false
}

func (c *RoomTypeCache) markDown(err error) {
	slog.Warn("redis cache unavailable, using in-memory fallback", "error", err)
	c.mu.Lock()
	c.down = true
	c.downAt = time.Now()
	c.mu.Unlock()
}
