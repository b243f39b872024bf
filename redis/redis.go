package redis

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects the slot cache. REDIS_ADDR is optional: without it every
// cache lookup misses and slot generation hits the database each time.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, slot caching disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	// Test connection
	if _, err := Client.Ping(Ctx).Result(); err != nil {
		Client = nil
		log.Printf("Failed to connect to Redis: %v, slot caching disabled", err)
		return
	}
	fmt.Println("✅ Connected to Redis")
}
