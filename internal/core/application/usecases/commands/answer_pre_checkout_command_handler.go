package commands

import (
	"context"
	"errors"
	"log/slog"

	"printery/internal/core/ports"
	"printery/internal/pkg/errs"
)

const staleOrderReason = "Order not found or no longer valid"

// AnswerPreCheckoutCommandHandler gates the provider's charge attempt.
// It approves only when the store still holds an order for the session and
// that order's invoice actually went out. The store is the single source of
// truth here: the order may have been cancelled, replaced, or already paid
// since the invoice was issued, so the check is always made fresh.
type AnswerPreCheckoutCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.NotificationDispatcher
	logger   *slog.Logger
}

// NewAnswerPreCheckoutCommandHandler creates a handler for pre-checkout queries.
func NewAnswerPreCheckoutCommandHandler(
	repo ports.OrderRepository,
	notifier ports.NotificationDispatcher,
	logger *slog.Logger,
) AnswerPreCheckoutCommandHandler {
	return AnswerPreCheckoutCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "AnswerPreCheckoutCommandHandler"),
	}
}

// Handle answers the query. A rejection is a normal outcome, not a handler
// failure: the provider gets the reason and the attempt is logged.
func (h *AnswerPreCheckoutCommandHandler) Handle(ctx context.Context, cmd AnswerPreCheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.repo.Get(ctx, cmd.SessionID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return h.reject(ctx, cmd, staleOrderReason)
		}
		return err
	}

	if !aggregate.Stage().IsPayable() {
		return h.reject(ctx, cmd, staleOrderReason)
	}

	if err = h.notifier.AnswerPreCheckout(ctx, cmd.QueryID(), true, ""); err != nil {
		return err
	}

	h.logger.Info("pre-checkout approved",
		"session", cmd.SessionID().Int64(),
		"query", cmd.QueryID())
	return nil
}

func (h *AnswerPreCheckoutCommandHandler) reject(
	ctx context.Context, cmd AnswerPreCheckoutCommand, reason string,
) error {
	rejection := errs.NewPreCheckoutRejectedError(cmd.SessionID().Int64(), reason)
	h.logger.Error("pre-checkout rejected",
		"session", cmd.SessionID().Int64(),
		"query", cmd.QueryID(),
		"error", rejection)

	return h.notifier.AnswerPreCheckout(ctx, cmd.QueryID(), false, reason)
}
