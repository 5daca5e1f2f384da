// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"workhub/config"
)

// SnapshotClient is the Redis client backing store snapshots.
var SnapshotClient *redis.Client

// InitSnapshotClient initializes the Redis client used for snapshot
// persistence. Only called when SNAPSHOT_ENABLED is set.
func InitSnapshotClient() {
	SnapshotClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SnapshotClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Snapshot): %v", err)
	}
}

// GetSnapshotClient returns the snapshot Redis client.
func GetSnapshotClient() *redis.Client {
	if SnapshotClient == nil {
		InitSnapshotClient()
	}
	return SnapshotClient
}
