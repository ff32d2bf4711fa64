package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"printery/internal/core/ports"
	"printery/internal/pkg/sessions"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop background jobs.
type JobManager struct {
	orderReaperJob *OrderReaperJob
}

// NewJobManager creates a job manager. A zero orderTTL disables the reaper
// entirely, matching the reference behavior of keeping abandoned orders
// until the session acts on them.
func NewJobManager(
	repo ports.OrderRepository,
	notifier ports.NotificationDispatcher,
	keeper *sessions.Keeper,
	orderTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	manager := &JobManager{}
	if orderTTL > 0 {
		manager.orderReaperJob = NewOrderReaperJob(repo, notifier, keeper, orderTTL, logger)
	}
	return manager
}

// StartAll starts all configured jobs.
func (jm *JobManager) StartAll() error {
	if jm.orderReaperJob == nil {
		return nil
	}
	if err := jm.orderReaperJob.Start(); err != nil {
		return fmt.Errorf("failed to start order reaper job: %w", err)
	}
	return nil
}

// StopAll stops all configured jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.orderReaperJob != nil {
		jm.orderReaperJob.Stop()
	}
}
