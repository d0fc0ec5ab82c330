package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	jsoniter "github.com/json-iterator/go"
	"github.com/quickcare/backend-api-go/hospitals"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"go.uber.org/zap"
)

const locationKeyPrefix = "location:"

// LocationTTL bounds how long a reported device fix counts as "last known".
const LocationTTL = 24 * time.Hour

type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(addr, password string) *RedisRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &RedisRepository{client: client}
}

func (repository *RedisRepository) SetKey(key string, value interface{}, ttl time.Duration) {
	status := repository.client.Set(key, value, ttl)
	if _, err := status.Result(); err != nil {
		log.Logger().Warn("could not set cache key", zap.String("key", key), zap.Error(err))
	}
}

// Get returns the raw cached bytes, or nil on a miss or error.
func (repository *RedisRepository) Get(key string) []byte {
	status := repository.client.Get(key)
	if status.Err() != nil {
		return nil
	}

	data, err := status.Bytes()
	if err != nil {
		return nil
	}

	return data
}

func (repository *RedisRepository) Delete(key string) error {
	status := repository.client.Del(key)
	if status.Err() != nil {
		return status.Err()
	}

	return nil
}

func (repository *RedisRepository) Prune() error {
	resp := repository.client.FlushDB()
	return resp.Err()
}

func (repository *RedisRepository) Ping() error {
	return repository.client.Ping().Err()
}

func (repository *RedisRepository) Close() error {
	return repository.client.Close()
}

// SetLocation records the last fix reported by a device.
func (repository *RedisRepository) SetLocation(ctx context.Context, deviceID string, coords hospitals.Coordinates) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := jsoniter.Marshal(coords)
	if err != nil {
		return fmt.Errorf("could not encode location: %w", err)
	}

	if err := repository.client.Set(locationKeyPrefix+deviceID, payload, LocationTTL).Err(); err != nil {
		return fmt.Errorf("could not store location: %w", err)
	}

	return nil
}

// GetLocation returns the last fix of a device; found is false when the
// device never reported or the fix expired.
func (repository *RedisRepository) GetLocation(ctx context.Context, deviceID string) (hospitals.Coordinates, bool, error) {
	if err := ctx.Err(); err != nil {
		return hospitals.Coordinates{}, false, err
	}

	raw, err := repository.client.Get(locationKeyPrefix + deviceID).Bytes()
	if err == redis.Nil {
		return hospitals.Coordinates{}, false, nil
	}
	if err != nil {
		return hospitals.Coordinates{}, false, fmt.Errorf("could not read location: %w", err)
	}

	var coords hospitals.Coordinates
	if err := jsoniter.Unmarshal(raw, &coords); err != nil {
		return hospitals.Coordinates{}, false, fmt.Errorf("could not decode location: %w", err)
	}

	return coords, true, nil
}
