package service

import (
	"context"
	"fmt"
	"time"

	"fund-directory/internal/directory/repository"
	"fund-directory/internal/entity"
	"fund-directory/pkg/logger"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const (
	snapshotCacheKey = "fund-directory:snapshot"

	// sharedReadTimeout bounds one read of the source shared by all waiting callers.
	sharedReadTimeout = 30 * time.Second
)

// SnapshotStore loads the current snapshot and keeps the parsed value cached.
type SnapshotStore interface {
	// Load returns the cached snapshot, reading the source on a miss. Any read
	// or parse failure is reported as ErrSnapshotUnavailable. A caller whose
	// ctx ends first gets ctx.Err(); other callers sharing the read are unaffected.
	Load(ctx context.Context) (*entity.Snapshot, error)
	// Refresh re-reads the source and replaces the cached snapshot. On failure
	// the previously cached snapshot is kept.
	Refresh(ctx context.Context) (*entity.Snapshot, error)
	// Invalidate drops the cached snapshot so the next Load reads the source.
	Invalidate()
}

type snapshotStore struct {
	source repository.SnapshotSource
	cache  *cache.Cache
	ttl    time.Duration
	group  singleflight.Group
	logger *logger.Logger
}

// NewSnapshotStore creates a SnapshotStore over source. A ttl of zero keeps
// the parsed snapshot until it is refreshed or invalidated.
func NewSnapshotStore(source repository.SnapshotSource, ttl time.Duration, logger *logger.Logger) SnapshotStore {
	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = 2 * ttl
	}
	return &snapshotStore{
		source: source,
		cache:  cache.New(expiration, cleanup),
		ttl:    expiration,
		logger: logger,
	}
}

func (s *snapshotStore) Load(ctx context.Context) (*entity.Snapshot, error) {
	if cached, ok := s.cache.Get(snapshotCacheKey); ok {
		return cached.(*entity.Snapshot), nil
	}
	return s.fetch(ctx)
}

func (s *snapshotStore) Refresh(ctx context.Context) (*entity.Snapshot, error) {
	return s.fetch(ctx)
}

func (s *snapshotStore) Invalidate() {
	s.cache.Delete(snapshotCacheKey)
}

// fetch collapses concurrent reads of the source into one. The shared read
// runs detached from any single caller's cancellation; each caller stops
// waiting when its own ctx is done.
func (s *snapshotStore) fetch(ctx context.Context) (*entity.Snapshot, error) {
	ch := s.group.DoChan(snapshotCacheKey, func() (interface{}, error) {
		readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedReadTimeout)
		defer cancel()

		start := time.Now()
		raw, err := s.source.Fetch(readCtx)
		if err != nil {
			return nil, err
		}
		result, err := DecodeSnapshot(raw)
		if err != nil {
			return nil, err
		}

		s.cache.Set(snapshotCacheKey, result.Snapshot, s.ttl)
		s.logger.Info("Snapshot loaded",
			logger.StringField("source", s.source.Name()),
			logger.Field("generated_at", result.Snapshot.GeneratedAt),
			logger.IntField("funds", len(result.Snapshot.Funds)),
			logger.IntField("dropped_funds", result.DroppedFunds),
			logger.IntField("nulled_fields", result.NulledFields),
			logger.DurationField("took", time.Since(start)),
		)
		return result.Snapshot, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			s.logger.WarnContext(ctx, "Snapshot unavailable",
				logger.StringField("source", s.source.Name()),
				logger.ErrorField(res.Err),
			)
			return nil, fmt.Errorf("%w: %v", ErrSnapshotUnavailable, res.Err)
		}
		return res.Val.(*entity.Snapshot), nil
	}
}
