package service

import (
	"context"
	"time"

	"fund-directory/internal/entity"
	"fund-directory/pkg/logger"
)

// FundPage is one page of query results.
type FundPage struct {
	GeneratedAt time.Time
	TotalCount  int
	Offset      int
	Limit       int
	Funds       []entity.FundRecord
}

// Vocabularies are the closed category and stage lists of a snapshot.
type Vocabularies struct {
	GeneratedAt time.Time
	Categories  []string
	Stages      []string
}

// FeedReport is the per-feed diagnostic view.
type FeedReport struct {
	GeneratedAt time.Time
	Feeds       []FeedStatus
}

// DirectoryService answers read requests against the current snapshot. Every
// call loads the snapshot once and works on that single instance.
type DirectoryService interface {
	QueryFunds(ctx context.Context, filter FundFilter, page Pagination) (*FundPage, error)
	Health(ctx context.Context) (*HealthReport, error)
	Feeds(ctx context.Context) (*FeedReport, error)
	Manager(ctx context.Context, firmSlug string) (*entity.ManagerProfile, error)
	Managers(ctx context.Context) ([]entity.ManagerProfile, error)
	Vocabularies(ctx context.Context) (*Vocabularies, error)
	RenderFeed(ctx context.Context) (string, error)
}

// NewDirectoryService creates a DirectoryService. now is the clock used for
// health evaluation; nil means time.Now.
func NewDirectoryService(store SnapshotStore, channel Channel, now func() time.Time, logger *logger.Logger) DirectoryService {
	if now == nil {
		now = time.Now
	}
	return &directoryService{
		store:   store,
		channel: channel,
		now:     now,
		logger:  logger,
	}
}

type directoryService struct {
	store   SnapshotStore
	channel Channel
	now     func() time.Time
	logger  *logger.Logger
}

func (s *directoryService) QueryFunds(ctx context.Context, filter FundFilter, page Pagination) (*FundPage, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	page = page.clamp()
	funds, total := QueryFunds(snap.Funds, filter, page)

	s.logger.DebugContext(ctx, "Funds queried",
		logger.IntField("total_count", total),
		logger.IntField("returned", len(funds)),
		logger.IntField("offset", page.Offset),
		logger.IntField("limit", page.Limit),
	)
	return &FundPage{
		GeneratedAt: snap.GeneratedAt,
		TotalCount:  total,
		Offset:      page.Offset,
		Limit:       page.Limit,
		Funds:       funds,
	}, nil
}

func (s *directoryService) Health(ctx context.Context) (*HealthReport, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	report := EvaluateHealth(snap, s.now())
	return &report, nil
}

func (s *directoryService) Feeds(ctx context.Context) (*FeedReport, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &FeedReport{GeneratedAt: snap.GeneratedAt, Feeds: EvaluateFeeds(snap, s.now())}, nil
}

func (s *directoryService) Manager(ctx context.Context, firmSlug string) (*entity.ManagerProfile, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return FindManagerProfile(snap, firmSlug)
}

func (s *directoryService) Managers(ctx context.Context) ([]entity.ManagerProfile, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ListManagerProfiles(snap), nil
}

func (s *directoryService) Vocabularies(ctx context.Context) (*Vocabularies, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Vocabularies{GeneratedAt: snap.GeneratedAt, Categories: snap.Categories, Stages: snap.Stages}, nil
}

func (s *directoryService) RenderFeed(ctx context.Context) (string, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	return RenderFeed(snap, s.channel), nil
}
