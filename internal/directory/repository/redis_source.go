package repository

import (
	"context"
	"errors"
	"fmt"

	"fund-directory/internal/entity"

	"github.com/redis/go-redis/v9"
)

type redisSnapshotSource struct {
	client *redis.Client
	key    string
}

// NewRedisSnapshotSource reads the snapshot JSON stored as a string under key.
func NewRedisSnapshotSource(client *redis.Client, key string) SnapshotSource {
	return &redisSnapshotSource{client: client, key: key}
}

func (s *redisSnapshotSource) Name() string {
	return "redis:" + s.key
}

func (s *redisSnapshotSource) Fetch(ctx context.Context) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: redis key %s", ErrSnapshotNotFound, s.key)
		}
		return nil, fmt.Errorf("failed to read snapshot from redis: %w", err)
	}
	return raw, nil
}

type redisSnapshotPublisher struct {
	client *redis.Client
	key    string
}

// NewRedisSnapshotPublisher writes snapshots under key, replacing the previous one.
func NewRedisSnapshotPublisher(client *redis.Client, key string) SnapshotPublisher {
	return &redisSnapshotPublisher{client: client, key: key}
}

func (p *redisSnapshotPublisher) Publish(ctx context.Context, raw []byte, _ *entity.Snapshot) error {
	if err := p.client.Set(ctx, p.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to publish snapshot to redis: %w", err)
	}
	return nil
}
