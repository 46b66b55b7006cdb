package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/realtime"
)

const propertiesKey = `properties:all`

type RedisCache struct {
	Client *redis.Client
}

func New() (*RedisCache, error) {
	return connect(addr(`REDIS_ADDR`, `redis:6379`))
}

func NewForTest() (*RedisCache, error) {
	return connect(addr(`TEST_REDIS_ADDR`, `localhost:6379`))
}

func connect(address string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: ``,
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	return &RedisCache{Client: client}, nil
}

func addr(key, fallback string) string {
	if value := os.Getenv(key); value != `` {
		return value
	}
	return fallback
}

func (r *RedisCache) GetProperties() ([]byte, error) {
	data, err := r.Client.Get(context.Background(), propertiesKey).Result()
	if err != nil {
		return nil, err
	}

	return []byte(data), nil
}

func (r *RedisCache) PutProperties(properties []models.Property) error {
	data, err := json.Marshal(properties)
	if err != nil {
		slog.Error(`Failed to marshal properties`, slog.Any(`err`, err))
		return err
	}

	if err := r.Client.Set(context.Background(), propertiesKey, data, 5*time.Minute).Err(); err != nil {
		slog.Error(`Failed to cache properties`, slog.Any(`err`, err))
		return err
	}

	return nil
}

func (r *RedisCache) InvalidateProperties() {
	if err := r.Client.Del(context.Background(), propertiesKey).Err(); err != nil {
		slog.Error(`Failed to invalidate property cache`, slog.Any(`err`, err))
	}
}

func (r *RedisCache) PublishPendingCount(count int) error {
	return r.Client.Publish(context.Background(), realtime.PendingCountTopic, strconv.Itoa(count)).Err()
}

func (r *RedisCache) PublishSystemLog(entry models.SystemLog) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return r.Client.Publish(context.Background(), realtime.SystemLogTopic, data).Err()
}
