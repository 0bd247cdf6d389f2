package config

import (
	"LevelUp/services/redis"
	"os"

	"github.com/sirupsen/logrus"
)

// Connect to Redis. Returns nil without error when REDIS_URL is unset:
// the report cache is optional and the API runs fine without it.
func Connect_redis() (*redis.RedisClient, error) {
	redisUri := os.Getenv("REDIS_URL")
	if redisUri == "" {
		logrus.Warn("REDIS_URL not set, running without report cache")
		return nil, nil
	}
	redisClient, err := redis.InitRedis(redisUri, 0)
	if err != nil {
		return nil, err
	}
	logrus.Info("Redis connection established")
	return redisClient, nil
}
