package commands

import (
	"context"
	"log/slog"

	"printery/internal/core/domain/model/order"
	"printery/internal/core/ports"
)

// EditOrderCommandHandler discards the session's order and opens a fresh one.
// Restarting from the first question keeps every collected field consistent
// with the others, which field-level editing could not guarantee.
type EditOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.NotificationDispatcher
	logger   *slog.Logger
}

// NewEditOrderCommandHandler creates a handler for order restarts.
func NewEditOrderCommandHandler(
	repo ports.OrderRepository,
	notifier ports.NotificationDispatcher,
	logger *slog.Logger,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "EditOrderCommandHandler"),
	}
}

// Handle deletes the old order, creates a new one, and prompts for the first
// choice again.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.repo.Delete(ctx, cmd.SessionID()); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.SessionID())
	if err != nil {
		return err
	}

	if err = h.repo.Save(ctx, aggregate); err != nil {
		return err
	}

	h.logger.Info("order restarted", "session", cmd.SessionID().Int64(), "order", aggregate.ID().String())

	text, choices := promptFor(aggregate)
	return h.notifier.SendPrompt(ctx, cmd.SessionID(), text, choices)
}
