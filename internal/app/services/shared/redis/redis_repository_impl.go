package redis

import (
	"context"
	"time"

	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}
	return value, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) PushToList(ctx context.Context, key string, values ...interface{}) error {
	err := r.client.RPush(ctx, key, values...).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) GetList(ctx context.Context, key string) ([]string, error) {
	values, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	return values, nil
}

func (r *redisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	err := r.client.Expire(ctx, key, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}
