package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// RedisHealth reports each Redis role separately: the generic cache and the
// configurator session store.
type RedisHealth struct {
	Cache    bool `json:"cache"`
	Sessions bool `json:"sessions"`
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool        `json:"mongo"`
	Redis     RedisHealth `json:"redis"`
	CheckedAt time.Time   `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func probeHealth(ctx context.Context, cacheClient, sessionClient *redis.Client, mongoClient *mongo.Client) HealthStatus {
	status := HealthStatus{CheckedAt: time.Now()}
	if cacheClient != nil {
		status.Redis.Cache = cacheClient.Ping(ctx).Err() == nil
	}
	if sessionClient != nil {
		status.Redis.Sessions = sessionClient.Ping(ctx).Err() == nil
	}
	if mongoClient != nil {
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
	}
	return status
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(cacheClient, sessionClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := probeHealth(ctx, cacheClient, sessionClient, mongoClient)

			mu.Lock()
			currentHealth = status
			mu.Unlock()
		}
	}()
}
