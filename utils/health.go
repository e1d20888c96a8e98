package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest probe result for the service's backends: the
// booking store, the auth-token cache DB and the email queue DB.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	AuthCache bool      `json:"authCache"`
	Queue     bool      `json:"queue"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	healthMu     sync.RWMutex
	latestHealth HealthStatus
)

// GetHealthStatus returns the most recent probe result.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return latestHealth
}

// probeBackends pings each backend once within the context deadline.
func probeBackends(ctx context.Context, authCache, queue *redis.Client, mongoClient *mongo.Client) HealthStatus {
	return HealthStatus{
		Mongo:     mongoClient.Ping(ctx, nil) == nil,
		AuthCache: authCache.Ping(ctx).Err() == nil,
		Queue:     queue.Ping(ctx).Err() == nil,
		CheckedAt: time.Now(),
	}
}

// StartHealthMonitor probes the backends once a minute and stores the result
// for the health endpoint.
func StartHealthMonitor(authCache, queue *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			status := probeBackends(ctx, authCache, queue, mongoClient)
			cancel()

			healthMu.Lock()
			latestHealth = status
			healthMu.Unlock()
		}
	}()
}
