package utils

import (
	"context"
	"log"
	"time"

	"elysium/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the Redis client backing booking sessions when
// REDIS_ADDR is configured. It stays nil in the default in-memory setup.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for booking-session storage.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the Redis session client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
