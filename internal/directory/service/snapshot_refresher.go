package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fund-directory/pkg/logger"
	"fund-directory/pkg/telegram"

	"github.com/robfig/cron/v3"
)

// SnapshotRefresher re-reads the snapshot on a cron schedule and alerts
// operators when the pipeline health status changes.
type SnapshotRefresher struct {
	store    SnapshotStore
	notifier telegram.Notifier
	now      func() time.Time
	logger   *logger.Logger
	cron     *cron.Cron

	mu         sync.Mutex
	ctx        context.Context
	lastStatus HealthStatus
	done       chan struct{}
}

// NewSnapshotRefresher schedules refreshes with a standard cron expression or
// descriptor such as "@every 15m". notifier may be nil to disable alerts.
func NewSnapshotRefresher(store SnapshotStore, schedule string, notifier telegram.Notifier, now func() time.Time, logger *logger.Logger) (*SnapshotRefresher, error) {
	if now == nil {
		now = time.Now
	}
	r := &SnapshotRefresher{
		store:    store,
		notifier: notifier,
		now:      now,
		logger:   logger,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor))),
		ctx:      context.Background(),
		done:     make(chan struct{}),
	}
	if _, err := r.cron.AddFunc(schedule, r.runScheduled); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	return r, nil
}

// Start runs the schedule until ctx is cancelled.
func (r *SnapshotRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	r.ctx = ctx
	r.mu.Unlock()

	r.cron.Start()
	go func() {
		defer close(r.done)
		<-ctx.Done()
		<-r.cron.Stop().Done()
		r.logger.Info("Snapshot refresher stopped")
	}()
}

// Done is closed once the refresher has stopped and no refresh is running.
func (r *SnapshotRefresher) Done() <-chan struct{} {
	return r.done
}

func (r *SnapshotRefresher) runScheduled() {
	r.mu.Lock()
	ctx := r.ctx
	r.mu.Unlock()
	r.RefreshOnce(ctx)
}

// RefreshOnce reloads the snapshot, evaluates health and sends an alert when
// the status differs from the previous refresh. The first observation alerts
// only when it is not healthy. It returns the evaluated status, or "" when the
// snapshot could not be loaded.
func (r *SnapshotRefresher) RefreshOnce(ctx context.Context) HealthStatus {
	snap, err := r.store.Refresh(ctx)
	if err != nil {
		r.logger.Error("Scheduled snapshot refresh failed", logger.ErrorField(err))
		return ""
	}
	report := EvaluateHealth(snap, r.now())

	r.mu.Lock()
	previous := r.lastStatus
	r.lastStatus = report.Status
	r.mu.Unlock()

	r.logger.Info("Snapshot refreshed",
		logger.StringField("status", string(report.Status)),
		logger.FloatField("hours_since_update", report.HoursSinceUpdate),
		logger.IntField("feeds_disabled", report.FeedsDisabled),
		logger.IntField("feeds_stale", report.FeedsStale),
	)

	changed := previous != report.Status && (previous != "" || report.Status != HealthHealthy)
	if changed && r.notifier != nil {
		msg := telegram.FormatHealthAlert(telegram.HealthAlert{
			Status:           string(report.Status),
			PreviousStatus:   string(previous),
			GeneratedAt:      report.GeneratedAt,
			HoursSinceUpdate: report.HoursSinceUpdate,
			FeedsEnabled:     report.FeedsEnabled,
			FeedsDisabled:    report.FeedsDisabled,
			FeedsStale:       report.FeedsStale,
			TotalFunds:       report.TotalFunds,
		})
		if err := r.notifier.SendMessage(msg); err != nil {
			r.logger.Error("Failed to send health alert", logger.ErrorField(err))
		}
	}
	return report.Status
}
