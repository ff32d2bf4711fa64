package commands

import (
	"context"
	"log/slog"

	"printery/internal/core/domain/model/order"
	"printery/internal/core/ports"
)

// StartOrderCommandHandler opens a fresh order for a session and prompts for
// the first choice. Saving replaces any order the session already had, so a
// restart never leaks fields from the prior attempt.
type StartOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.NotificationDispatcher
	logger   *slog.Logger
}

// NewStartOrderCommandHandler creates a handler for opening orders.
func NewStartOrderCommandHandler(
	repo ports.OrderRepository,
	notifier ports.NotificationDispatcher,
	logger *slog.Logger,
) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "StartOrderCommandHandler"),
	}
}

// Handle creates the order, stores it, and sends the color prompt.
func (h *StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.SessionID())
	if err != nil {
		return err
	}

	if err = h.repo.Save(ctx, aggregate); err != nil {
		return err
	}

	h.logger.Info("order started", "session", cmd.SessionID().Int64(), "order", aggregate.ID().String())

	text, choices := promptFor(aggregate)
	return h.notifier.SendPrompt(ctx, cmd.SessionID(), text, choices)
}
