package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisVerificationStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisVerificationStore(client redis.UniversalClient, prefix string) *RedisVerificationStore {
	if prefix == "" {
		prefix = "reset"
	}
	return &RedisVerificationStore{client: client, prefix: prefix}
}

func (s *RedisVerificationStore) redisKey(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

func (s *RedisVerificationStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.redisKey(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("verification store set: %w", err)
	}
	return nil
}

func (s *RedisVerificationStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("verification store get: %w", err)
	}
	return value, true, nil
}

func (s *RedisVerificationStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("verification store delete: %w", err)
	}
	return nil
}
