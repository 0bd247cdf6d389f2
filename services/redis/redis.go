package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Key under which the serialized events-by-user report is cached.
const userEventsReportKey = "reports:userevents"

// ReportTTL bounds how stale a cached report can get if an invalidation
// is ever missed.
const ReportTTL = 5 * time.Minute

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		logrus.Info("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// SaveUserEventsReport caches the serialized report payload.
func (rc *RedisClient) SaveUserEventsReport(data []byte) error {
	return rc.client.Set(rc.ctx, userEventsReportKey, data, ReportTTL).Err()
}

// GetUserEventsReport returns the cached report payload, or nil on a miss.
func (rc *RedisClient) GetUserEventsReport() ([]byte, error) {
	data, err := rc.client.Get(rc.ctx, userEventsReportKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// InvalidateUserEventsReport drops the cached report. Called whenever a
// signup, cancellation or event deletion changes what the report shows.
func (rc *RedisClient) InvalidateUserEventsReport() error {
	return rc.client.Del(rc.ctx, userEventsReportKey).Err()
}
