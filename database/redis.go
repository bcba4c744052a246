// database/redis.go - Optional Redis connection for leaderboard caching
package database

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

// InitRedis connects to Redis when REDIS_ADDR is configured. The cache is
// optional: with no address set, GetRedis returns nil and callers fall back
// to database-only reads.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("Redis not configured, leaderboard cache disabled")
		return
	}

	dbNum, _ := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("⚠️ Redis unreachable (%v), leaderboard cache disabled", err)
		return
	}

	rdb = client
	log.Println("✅ Redis connected successfully")
}

// GetRedis returns the Redis client, or nil when caching is disabled.
func GetRedis() *redis.Client {
	return rdb
}

// CloseRedis closes the Redis connection if one was opened.
func CloseRedis() {
	if rdb != nil {
		_ = rdb.Close()
	}
}
