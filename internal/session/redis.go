package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:v1:"

type redisRegistry struct {
	cache *redis.Client
	ttl   time.Duration
}

// NewRedisRegistry builds a registry backed by Redis so sessions can be
// shared across replicas. Expiry is enforced by the key TTL.
func NewRedisRegistry(cache *redis.Client, ttl time.Duration) Registry {
	return &redisRegistry{cache: cache, ttl: ttl}
}

func (r *redisRegistry) Issue(ctx context.Context, accountID string) (string, error) {
	payload, err := json.Marshal(Record{AccountID: accountID, CreatedAt: time.Now().UTC()})
	if err != nil {
		return "", fmt.Errorf("encode session record: %w", err)
	}

	// SetNX guards against token collisions: an existing session is
	// never overwritten, we mint a new token instead.
	for attempts := 0; attempts < 3; attempts++ {
		token := uuid.NewString()
		ok, err := r.cache.SetNX(ctx, redisKeyPrefix+token, payload, r.ttl).Result()
		if err != nil {
			return "", fmt.Errorf("store session: %w", err)
		}
		if ok {
			return token, nil
		}
	}
	return "", fmt.Errorf("store session: token space exhausted")
}

func (r *redisRegistry) Resolve(ctx context.Context, token string) (string, error) {
	payload, err := r.cache.Get(ctx, redisKeyPrefix+token).Result()
	if err == redis.Nil {
		return "", ErrUnknownToken
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}

	var rec Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return "", fmt.Errorf("decode session record: %w", err)
	}
	return rec.AccountID, nil
}

func (r *redisRegistry) Revoke(ctx context.Context, token string) error {
	if err := r.cache.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
