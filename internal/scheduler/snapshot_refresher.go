package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/repository"
	"github.com/estatecerenti/umkm-monitoring-api/internal/config"
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/reconciling"
)

// SnapshotRefresher owns the latest whole-store snapshots and the reconciled
// result computed from them. A refresh re-reads both stores and reruns the
// engine from scratch; there is no incremental path. Refreshes are triggered
// by write handlers, by the cron safety poll, and once at startup.
type SnapshotRefresher struct {
	scheduler       *gocron.Scheduler
	config          config.SnapshotRefresh
	bookkeepingRepo repository.BookkeepingRepository
	mseRecordRepo   repository.MSERecordRepository

	trigger chan struct{}

	mu          sync.RWMutex
	refreshMu   sync.Mutex
	timelines   []*domain.ReconciledTimeline
	batch       []*domain.MonitoringRecord
	refreshedAt time.Time
	ready       bool
}

func NewSnapshotRefresher(
	bookkeepingRepo repository.BookkeepingRepository,
	mseRecordRepo repository.MSERecordRepository,
	appConfig *config.Config,
) *SnapshotRefresher {
	return &SnapshotRefresher{
		scheduler:       gocron.NewScheduler(time.Local),
		config:          appConfig.SnapshotRefresh,
		bookkeepingRepo: bookkeepingRepo,
		mseRecordRepo:   mseRecordRepo,
		// Buffer of one: a trigger fired during a running pass schedules
		// exactly one follow-up pass, coalescing any further triggers.
		trigger: make(chan struct{}, 1),
	}
}

// Start runs the first pass synchronously so handlers never see an empty
// result after startup, then wires the trigger loop and the cron poll.
func (s *SnapshotRefresher) Start(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		return fmt.Errorf("initial snapshot refresh failed: %w", err)
	}

	go s.triggerLoop(ctx)

	if !s.config.Enabled {
		logrus.Info("snapshot refresh cron disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting snapshot refresh scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Refresh(ctx); err != nil {
			logrus.WithError(err).Error("scheduled snapshot refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("could not schedule snapshot refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping snapshot refresh scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// Trigger requests a refresh without waiting for it. Called by write
// handlers after a successful store write.
func (s *SnapshotRefresher) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

func (s *SnapshotRefresher) triggerLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.trigger:
			if err := s.Refresh(ctx); err != nil {
				logrus.WithError(err).Error("triggered snapshot refresh failed")
			}
		}
	}
}

// Refresh reads both stores and recomputes the reconciled result. Passes are
// serialized; the last completed pass wins. A store read error leaves the
// previous result in place.
func (s *SnapshotRefresher) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	started := time.Now()

	bookkeeping, err := s.bookkeepingRepo.Snapshot()
	if err != nil {
		return fmt.Errorf("bookkeeping snapshot: %w", err)
	}

	manual, err := s.mseRecordRepo.Snapshot()
	if err != nil {
		return fmt.Errorf("mse record snapshot: %w", err)
	}

	batch := reconciling.Flatten(bookkeeping, manual)
	timelines := reconciling.ReconcileBatch(batch)

	s.mu.Lock()
	s.timelines = timelines
	s.batch = batch
	s.refreshedAt = time.Now()
	s.ready = true
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"records":    len(batch),
		"identities": len(timelines),
		"elapsed":    time.Since(started),
	}).Debug("snapshot refresh completed")

	return nil
}

// Current hands out the latest reconciled result. The slices are replaced
// wholesale on refresh, never mutated, so callers may read them freely.
func (s *SnapshotRefresher) Current() ([]*domain.ReconciledTimeline, []*domain.MonitoringRecord) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timelines, s.batch
}

// RefreshedAt reports the completion time of the last successful pass.
func (s *SnapshotRefresher) RefreshedAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt, s.ready
}
