package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// inflightTTL caps how long the guard can outlive a crashed request.
const inflightTTL = 2 * time.Minute

// GenerationLocker serializes recipe generations per user. Acquire reports
// false when the user already holds the lock; on success the caller must
// invoke the returned release function once the generation finishes.
type GenerationLocker interface {
	Acquire(ctx context.Context, userID uuid.UUID) (release func(), acquired bool, err error)
}

type redisGenerationLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisGenerationLocker backs the per-user guard with a Redis SetNX lock,
// so it holds across replicas sharing the same Redis.
func NewRedisGenerationLocker(client *redis.Client) GenerationLocker {
	return &redisGenerationLocker{client: client, ttl: inflightTTL}
}

func (l *redisGenerationLocker) Acquire(ctx context.Context, userID uuid.UUID) (func(), bool, error) {
	key := fmt.Sprintf("generate:inflight:%s", userID)
	ok, err := l.client.SetNX(ctx, key, 1, l.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		if err := l.client.Del(context.WithoutCancel(ctx), key).Err(); err != nil {
			log.Printf("[GenerationLocker] failed to release in-flight guard: %v", err)
		}
	}
	return release, true, nil
}
