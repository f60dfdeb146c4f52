package service

import (
	"context"
	"testing"
	"time"

	"fund-directory/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectoryService(results ...stubResult) DirectoryService {
	return NewDirectoryService(&stubStore{results: results}, testChannel, fixedNow, logger.NewNop())
}

func TestDirectoryService_QueryFunds(t *testing.T) {
	snap := newSnapshot(numberedFunds(120)...)
	svc := newTestDirectoryService(stubResult{snap: snap})

	page, err := svc.QueryFunds(context.Background(), FundFilter{MinAmount: floatPtr(100)}, Pagination{Offset: 10, Limit: 500})
	require.NoError(t, err)

	assert.Equal(t, 20, page.TotalCount)
	assert.Equal(t, 10, page.Offset)
	assert.Equal(t, MaxLimit, page.Limit)
	assert.Equal(t, testGeneratedAt, page.GeneratedAt)
	require.Len(t, page.Funds, 10)
	assert.Equal(t, "Fund 110", page.Funds[0].FundName)
}

func TestDirectoryService_Unavailable(t *testing.T) {
	ctx := context.Background()
	svc := newTestDirectoryService()

	_, err := svc.QueryFunds(ctx, FundFilter{}, Pagination{Limit: 10})
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)
	_, err = svc.Health(ctx)
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)
	_, err = svc.Feeds(ctx)
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)
	_, err = svc.Manager(ctx, "acme")
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)
	_, err = svc.Managers(ctx)
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)
	_, err = svc.Vocabularies(ctx)
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)
	_, err = svc.RenderFeed(ctx)
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)
}

func TestDirectoryService_HealthUsesClock(t *testing.T) {
	svc := NewDirectoryService(
		&stubStore{results: []stubResult{{snap: newSnapshot()}}},
		testChannel,
		func() time.Time { return testGeneratedAt.Add(50 * time.Hour) },
		logger.NewNop(),
	)

	report, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, report.IsDataStale)
	assert.InDelta(t, 50.0, report.HoursSinceUpdate, 0.05)
}

func TestDirectoryService_ManagerAndVocabularies(t *testing.T) {
	snap := managerSnapshot()
	svc := newTestDirectoryService(stubResult{snap: snap}, stubResult{snap: snap}, stubResult{snap: snap})
	ctx := context.Background()

	profile, err := svc.Manager(ctx, "accel")
	require.NoError(t, err)
	assert.Equal(t, 2, profile.FundCount)

	_, err = svc.Manager(ctx, "benchmark")
	assert.ErrorIs(t, err, ErrManagerNotFound)

	vocab, err := svc.Vocabularies(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Categories, vocab.Categories)
	assert.Equal(t, snap.Stages, vocab.Stages)
}

func TestDirectoryService_RenderFeed(t *testing.T) {
	svc := newTestDirectoryService(stubResult{snap: newSnapshot(newFund("Fund I", "Acme"))})

	body, err := svc.RenderFeed(context.Background())
	require.NoError(t, err)
	assert.Contains(t, body, `<guid isPermaLink="false">acme-fund-i</guid>`)
}
