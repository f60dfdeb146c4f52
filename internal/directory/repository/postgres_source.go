package repository

import (
	"context"
	"errors"
	"fmt"

	"fund-directory/internal/entity"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type postgresSnapshotSource struct {
	db *gorm.DB
}

// NewPostgresSnapshotSource reads the most recently generated snapshot row
// from the fund_directory_snapshots table.
func NewPostgresSnapshotSource(db *gorm.DB) SnapshotSource {
	return &postgresSnapshotSource{db: db}
}

func (s *postgresSnapshotSource) Name() string {
	return "postgres:" + entity.SnapshotRecord{}.TableName()
}

func (s *postgresSnapshotSource) Fetch(ctx context.Context) ([]byte, error) {
	var record entity.SnapshotRecord
	err := s.db.WithContext(ctx).
		Select("id", "generated_at", "payload").
		Order("generated_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to query latest snapshot: %w", err)
	}
	return []byte(record.Payload), nil
}

type postgresSnapshotPublisher struct {
	db *gorm.DB
}

// NewPostgresSnapshotPublisher appends snapshots as new rows; readers pick the newest.
func NewPostgresSnapshotPublisher(db *gorm.DB) SnapshotPublisher {
	return &postgresSnapshotPublisher{db: db}
}

func (p *postgresSnapshotPublisher) Publish(ctx context.Context, raw []byte, snap *entity.Snapshot) error {
	record := entity.SnapshotRecord{
		GeneratedAt: snap.GeneratedAt,
		FundCount:   len(snap.Funds),
		Categories:  pq.StringArray(snap.Categories),
		Payload:     datatypes.JSON(raw),
	}
	if err := p.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}
