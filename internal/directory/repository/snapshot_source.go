package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"fund-directory/internal/entity"
)

// ErrSnapshotNotFound is returned by a source when no snapshot has been published yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotSource reads the raw snapshot document from wherever the ingestion
// pipeline publishes it.
type SnapshotSource interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

type fileSnapshotSource struct {
	path string
}

// NewFileSnapshotSource reads the snapshot from a JSON file on disk.
func NewFileSnapshotSource(path string) SnapshotSource {
	return &fileSnapshotSource{path: path}
}

func (s *fileSnapshotSource) Name() string {
	return "file:" + s.path
}

// Path returns the file being read.
func (s *fileSnapshotSource) Path() string {
	return s.path
}

func (s *fileSnapshotSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return raw, nil
}

// SnapshotPublisher stores a validated snapshot document where a SnapshotSource can read it.
type SnapshotPublisher interface {
	Publish(ctx context.Context, raw []byte, snap *entity.Snapshot) error
}
