package service

import (
	"math"
	"time"

	"fund-directory/internal/entity"
)

// HealthStatus is the tri-state classification of the ingestion pipeline.
type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthDegraded  HealthStatus = "degraded"
	HealthUnhealthy HealthStatus = "unhealthy"
)

const (
	// StaleAfter is how long an enabled feed may go without a successful fetch,
	// and how old a snapshot may get before its data is reported stale.
	StaleAfter = 48 * time.Hour

	degradedThreshold  = 5
	unhealthyThreshold = 10
)

// HealthReport summarises pipeline health and data freshness.
type HealthReport struct {
	Status           HealthStatus
	GeneratedAt      time.Time
	HoursSinceUpdate float64
	IsDataStale      bool
	TotalFunds       int
	TotalCovered     int
	TotalAUMMillions float64
	FeedsEnabled     int
	FeedsDisabled    int
	FeedsStale       int
	DateRange        entity.DateRange
}

// FeedStatus is the evaluated state of a single ingestion source.
type FeedStatus struct {
	Feed  entity.FeedHealthEntry
	Stale bool
}

// IsFeedStale reports whether an enabled feed has a last success older than StaleAfter.
// Feeds that never succeeded are not counted as stale.
func IsFeedStale(feed entity.FeedHealthEntry, now time.Time) bool {
	return feed.Enabled && feed.LastSuccess != nil && now.Sub(*feed.LastSuccess) > StaleAfter
}

// ClassifyHealth maps disabled and stale feed counts to a status. Thresholds are strict.
func ClassifyHealth(disabled, stale int) HealthStatus {
	switch {
	case disabled > unhealthyThreshold || stale > unhealthyThreshold:
		return HealthUnhealthy
	case disabled > degradedThreshold || stale > degradedThreshold:
		return HealthDegraded
	default:
		return HealthHealthy
	}
}

// EvaluateHealth classifies the snapshot's pipeline health as of now. Fund
// totals and the date range are passed through from the snapshot stats; feed
// counts are always recomputed from the feed health entries.
func EvaluateHealth(s *entity.Snapshot, now time.Time) HealthReport {
	r := HealthReport{
		GeneratedAt:      s.GeneratedAt,
		TotalFunds:       s.Stats.TotalFunds,
		TotalCovered:     s.Stats.TotalCovered,
		TotalAUMMillions: s.Stats.TotalAUMMillions,
		DateRange:        s.Stats.DateRange,
	}

	for _, feed := range s.FeedHealth {
		if !feed.Enabled {
			r.FeedsDisabled++
			continue
		}
		r.FeedsEnabled++
		if IsFeedStale(feed, now) {
			r.FeedsStale++
		}
	}

	age := now.Sub(s.GeneratedAt)
	r.HoursSinceUpdate = math.Round(age.Hours()*10) / 10
	r.IsDataStale = age > StaleAfter
	r.Status = ClassifyHealth(r.FeedsDisabled, r.FeedsStale)
	return r
}

// EvaluateFeeds returns the per-feed view behind the health counts, in snapshot order.
func EvaluateFeeds(s *entity.Snapshot, now time.Time) []FeedStatus {
	out := make([]FeedStatus, 0, len(s.FeedHealth))
	for _, feed := range s.FeedHealth {
		out = append(out, FeedStatus{Feed: feed, Stale: IsFeedStale(feed, now)})
	}
	return out
}
