package services

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheService fronts Redis for the discover-feed responses
type CacheService struct {
	Client *redis.Client
}

// InitializeRedisClient connects to Redis using REDIS_ADDR/REDIS_PASS.
// Returns nil when REDIS_ADDR is unset so callers can run uncached.
func InitializeRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR not set, feed caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	log.Println("✅ Connected to Redis")
	return client
}

// Get returns the cached payload for key, or "" on miss
func (cs *CacheService) Get(ctx context.Context, key string) string {
	if cs == nil || cs.Client == nil {
		return ""
	}
	val, err := cs.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ""
	}
	if err != nil {
		log.Printf("⚠️ Redis GET error for key %s: %v", key, err)
		return ""
	}
	return val
}

// Set stores a payload under key with a TTL
func (cs *CacheService) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if cs == nil || cs.Client == nil {
		return
	}
	if err := cs.Client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("⚠️ Redis SET error for key %s: %v", key, err)
	}
}

// InvalidatePrefix drops all cached entries under a key prefix
func (cs *CacheService) InvalidatePrefix(ctx context.Context, prefix string) {
	if cs == nil || cs.Client == nil {
		return
	}
	iter := cs.Client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := cs.Client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("⚠️ Redis DEL error for key %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("⚠️ Redis SCAN error for prefix %s: %v", prefix, err)
	}
}
