// internal/session/redis.go
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"edilia-assistant/internal/common/errors"
)

const keyPrefix = "chat:session:"

// RedisStore keeps conversation state in Redis with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, conversationID string) (*State, error) {
	data, err := s.client.Get(ctx, keyPrefix+conversationID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewSessionStoreFailedError(err)
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.NewSessionDecodeFailedError(err)
	}
	return &state, nil
}

func (s *RedisStore) Put(ctx context.Context, conversationID string, state *State) error {
	state.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(state)
	if err != nil {
		return errors.NewSessionDecodeFailedError(err)
	}
	if err := s.client.Set(ctx, keyPrefix+conversationID, data, s.ttl).Err(); err != nil {
		return errors.NewSessionStoreFailedError(err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, conversationID string) error {
	if err := s.client.Del(ctx, keyPrefix+conversationID).Err(); err != nil {
		return errors.NewSessionStoreFailedError(err)
	}
	return nil
}
