package commands

import (
	"context"
	"log/slog"

	"printery/internal/core/ports"
)

// CancelOrderCommandHandler deletes the session's order and returns the
// session to the idle state. Cancellation is one of the two terminal paths,
// so deletion here is mandatory, not best-effort.
type CancelOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.NotificationDispatcher
	logger   *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	repo ports.OrderRepository,
	notifier ports.NotificationDispatcher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "CancelOrderCommandHandler"),
	}
}

// Handle removes the order and offers to start over.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.repo.Delete(ctx, cmd.SessionID()); err != nil {
		return err
	}

	h.logger.Info("order cancelled", "session", cmd.SessionID().Int64())

	if err := h.notifier.SendMessage(ctx, cmd.SessionID(), "Order cancelled."); err != nil {
		return err
	}

	return h.notifier.SendPrompt(ctx, cmd.SessionID(),
		"Send "+StartOrderSentinel+" to begin a new order.", []string{StartOrderSentinel})
}
