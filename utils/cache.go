// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"appointly/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client, shared by the blocked-date cache.
var CacheClient *redis.Client

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// CloseCache releases the cache connection.
func CloseCache() {
	if CacheClient != nil {
		_ = CacheClient.Close()
		CacheClient = nil
	}
}
