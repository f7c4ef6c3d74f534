// config/redis.go
package config

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client for the last-location cache.
func NewRedisClient(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}
