package jobs

import (
	"context"
	"log/slog"
	"time"

	"printery/internal/core/ports"
	"printery/internal/pkg/sessions"

	"github.com/robfig/cron/v3"
)

const abandonedOrderText = "Your order expired after inactivity and was removed. Send a new order any time."

// OrderReaperJob sweeps orders whose session went quiet.
// Runs every minute and deletes orders not touched within the TTL, under the
// same per-session lock the webhook uses, so a sweep never races a live
// mutation for the same chat.
type OrderReaperJob struct {
	repo     ports.OrderRepository
	notifier ports.NotificationDispatcher
	keeper   *sessions.Keeper
	ttl      time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderReaperJob creates the stale order sweeper. ttl must be positive;
// a zero TTL disables the reaper at the composition root instead.
func NewOrderReaperJob(
	repo ports.OrderRepository,
	notifier ports.NotificationDispatcher,
	keeper *sessions.Keeper,
	ttl time.Duration,
	logger *slog.Logger,
) *OrderReaperJob {
	return &OrderReaperJob{
		repo:     repo,
		notifier: notifier,
		keeper:   keeper,
		ttl:      ttl,
		cron:     cron.New(),
		logger:   logger.With("component", "order_reaper_job"),
	}
}

// Start begins the sweep on a once-a-minute schedule.
func (j *OrderReaperJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.Sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("order reaper started", "ttl", j.ttl.String())
	return nil
}

// Stop stops the sweep schedule.
func (j *OrderReaperJob) Stop() {
	j.cron.Stop()
	j.logger.Info("order reaper stopped")
}

// Sweep deletes every order idle past the TTL and tells the session.
// Each order is re-checked under its session lock before deletion; an order
// touched between the listing and the lock is left alone.
func (j *OrderReaperJob) Sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-j.ttl)

	stale, err := j.repo.IdleSince(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "stale order listing failed", "error", err)
		return
	}

	for _, aggregate := range stale {
		sessionID := aggregate.SessionID()

		err = j.keeper.Do(sessionID.Int64(), func() error {
			current, getErr := j.repo.Get(ctx, sessionID)
			if getErr != nil {
				return nil // already gone
			}
			if !current.TouchedAt().Before(cutoff) {
				return nil // touched since the listing
			}

			if delErr := j.repo.Delete(ctx, sessionID); delErr != nil {
				return delErr
			}

			j.logger.InfoContext(ctx, "stale order reaped",
				"session", sessionID.Int64(),
				"stage", current.Stage().String())
			return j.notifier.SendMessage(ctx, sessionID, abandonedOrderText)
		})
		if err != nil {
			j.logger.ErrorContext(ctx, "stale order sweep failed",
				"session", sessionID.Int64(), "error", err)
		}
	}
}
