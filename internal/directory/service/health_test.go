package service

import (
	"fmt"
	"testing"
	"time"

	"fund-directory/internal/entity"

	"github.com/stretchr/testify/assert"
)

func feedsWith(enabled, disabled, stale int, now time.Time) []entity.FeedHealthEntry {
	fresh := now.Add(-time.Hour)
	old := now.Add(-72 * time.Hour)

	feeds := make([]entity.FeedHealthEntry, 0, enabled+disabled)
	for i := 0; i < enabled; i++ {
		last := fresh
		if i < stale {
			last = old
		}
		feeds = append(feeds, entity.FeedHealthEntry{
			FeedName:    fmt.Sprintf("enabled-%d", i),
			Enabled:     true,
			LastSuccess: &last,
		})
	}
	for i := 0; i < disabled; i++ {
		feeds = append(feeds, entity.FeedHealthEntry{FeedName: fmt.Sprintf("disabled-%d", i), Enabled: false})
	}
	return feeds
}

func TestEvaluateHealth_Classification(t *testing.T) {
	now := testGeneratedAt.Add(time.Hour)

	tests := []struct {
		name     string
		enabled  int
		disabled int
		stale    int
		want     HealthStatus
	}{
		{name: "all healthy", enabled: 12, want: HealthHealthy},
		{name: "two disabled of twelve", enabled: 10, disabled: 2, want: HealthHealthy},
		{name: "five disabled is still healthy", enabled: 7, disabled: 5, want: HealthHealthy},
		{name: "six disabled is degraded", enabled: 6, disabled: 6, want: HealthDegraded},
		{name: "ten disabled is degraded", enabled: 2, disabled: 10, want: HealthDegraded},
		{name: "eleven disabled is unhealthy", enabled: 1, disabled: 11, want: HealthUnhealthy},
		{name: "twelve disabled is unhealthy", disabled: 12, want: HealthUnhealthy},
		{name: "six stale is degraded", enabled: 12, stale: 6, want: HealthDegraded},
		{name: "eleven stale is unhealthy", enabled: 12, stale: 11, want: HealthUnhealthy},
		{name: "mixed takes the worse", enabled: 12, disabled: 3, stale: 11, want: HealthUnhealthy},
		{name: "no feeds", want: HealthHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := newSnapshot()
			snap.FeedHealth = feedsWith(tt.enabled, tt.disabled, tt.stale, now)

			report := EvaluateHealth(snap, now)

			assert.Equal(t, tt.want, report.Status)
			assert.Equal(t, tt.enabled, report.FeedsEnabled)
			assert.Equal(t, tt.disabled, report.FeedsDisabled)
			assert.Equal(t, tt.stale, report.FeedsStale)
		})
	}
}

func TestClassifyHealth_Monotonic(t *testing.T) {
	rank := map[HealthStatus]int{HealthHealthy: 0, HealthDegraded: 1, HealthUnhealthy: 2}

	for disabled := 0; disabled <= 15; disabled++ {
		for stale := 0; stale <= 15; stale++ {
			base := rank[ClassifyHealth(disabled, stale)]
			assert.GreaterOrEqual(t, rank[ClassifyHealth(disabled+1, stale)], base, "disabled=%d stale=%d", disabled, stale)
			assert.GreaterOrEqual(t, rank[ClassifyHealth(disabled, stale+1)], base, "disabled=%d stale=%d", disabled, stale)
		}
	}
}

func TestIsFeedStale(t *testing.T) {
	now := testGeneratedAt
	exactly := now.Add(-StaleAfter)
	justOver := now.Add(-StaleAfter - time.Second)

	assert.False(t, IsFeedStale(entity.FeedHealthEntry{Enabled: true, LastSuccess: &exactly}, now))
	assert.True(t, IsFeedStale(entity.FeedHealthEntry{Enabled: true, LastSuccess: &justOver}, now))
	assert.False(t, IsFeedStale(entity.FeedHealthEntry{Enabled: false, LastSuccess: &justOver}, now), "disabled feeds are never stale")
	assert.False(t, IsFeedStale(entity.FeedHealthEntry{Enabled: true}, now), "never-succeeded feeds are not stale")
}

func TestEvaluateHealth_DataFreshness(t *testing.T) {
	snap := newSnapshot()

	report := EvaluateHealth(snap, testGeneratedAt.Add(50*time.Hour))
	assert.InDelta(t, 50.0, report.HoursSinceUpdate, 0.05)
	assert.True(t, report.IsDataStale)

	report = EvaluateHealth(snap, testGeneratedAt.Add(47*time.Hour+30*time.Minute))
	assert.Equal(t, 47.5, report.HoursSinceUpdate)
	assert.False(t, report.IsDataStale)

	report = EvaluateHealth(snap, testGeneratedAt.Add(48*time.Hour))
	assert.False(t, report.IsDataStale, "threshold is strict")
}

func TestEvaluateHealth_DependsOnNow(t *testing.T) {
	snap := newSnapshot()
	success := testGeneratedAt.Add(-24 * time.Hour)
	for i := 0; i < 6; i++ {
		snap.FeedHealth = append(snap.FeedHealth, entity.FeedHealthEntry{Enabled: true, LastSuccess: &success})
	}

	assert.Equal(t, HealthHealthy, EvaluateHealth(snap, testGeneratedAt).Status)
	assert.Equal(t, HealthDegraded, EvaluateHealth(snap, testGeneratedAt.Add(25*time.Hour)).Status)
}

func TestEvaluateHealth_PassesStatsThrough(t *testing.T) {
	earliest, latest := "2025-01-01", "2026-10-01"
	snap := newSnapshot(newFund("Only", "Acme"))
	snap.Stats = entity.Stats{
		TotalFunds:       412,
		TotalCovered:     40,
		TotalAUMMillions: 98765.5,
		DateRange:        entity.DateRange{Earliest: &earliest, Latest: &latest},
	}

	report := EvaluateHealth(snap, testGeneratedAt)

	assert.Equal(t, 412, report.TotalFunds)
	assert.Equal(t, 40, report.TotalCovered)
	assert.Equal(t, 98765.5, report.TotalAUMMillions)
	assert.Equal(t, snap.Stats.DateRange, report.DateRange)
	assert.Equal(t, testGeneratedAt, report.GeneratedAt)
}

func TestEvaluateFeeds(t *testing.T) {
	now := testGeneratedAt
	snap := newSnapshot()
	snap.FeedHealth = feedsWith(3, 1, 2, now)

	statuses := EvaluateFeeds(snap, now)

	if assert.Len(t, statuses, 4) {
		assert.True(t, statuses[0].Stale)
		assert.True(t, statuses[1].Stale)
		assert.False(t, statuses[2].Stale)
		assert.False(t, statuses[3].Stale)
		assert.Equal(t, "disabled-0", statuses[3].Feed.FeedName)
	}
}
