package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSlotStore stores each slot as a Redis string under "<prefix>:<key>" with no expiry.
type RedisSlotStore struct {
	client *redis.Client
	prefix string
}

// NewRedisSlotStore wraps an existing client. An empty prefix stores keys unqualified.
func NewRedisSlotStore(client *redis.Client, prefix string) *RedisSlotStore {
	return &RedisSlotStore{client: client, prefix: prefix}
}

func (s *RedisSlotStore) key(slot string) string {
	if s.prefix == "" {
		return slot
	}
	return s.prefix + ":" + slot
}

// Get returns the value stored under slot.
func (s *RedisSlotStore) Get(ctx context.Context, slot string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get slot %s from redis: %w", slot, err)
	}

	return data, true, nil
}

// Set replaces the value stored under slot.
func (s *RedisSlotStore) Set(ctx context.Context, slot string, value []byte) error {
	if err := s.client.Set(ctx, s.key(slot), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set slot %s in redis: %w", slot, err)
	}
	return nil
}

// Delete removes slot.
func (s *RedisSlotStore) Delete(ctx context.Context, slot string) error {
	if err := s.client.Del(ctx, s.key(slot)).Err(); err != nil {
		return fmt.Errorf("failed to delete slot %s from redis: %w", slot, err)
	}
	return nil
}

// Close closes the client.
func (s *RedisSlotStore) Close() error {
	return s.client.Close()
}
