package commands

import (
	"context"
	"errors"
	"log/slog"

	"printery/internal/core/domain/model/order"
	"printery/internal/core/ports"
	"printery/internal/pkg/errs"
)

// AttachFileCommandHandler stores an uploaded document on the session's
// order. A document that arrives while the order is not waiting for one is
// rejected with a re-prompt for the input the order does expect.
type AttachFileCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.NotificationDispatcher
	logger   *slog.Logger
}

// NewAttachFileCommandHandler creates a handler for file uploads.
func NewAttachFileCommandHandler(
	repo ports.OrderRepository,
	notifier ports.NotificationDispatcher,
	logger *slog.Logger,
) AttachFileCommandHandler {
	return AttachFileCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "AttachFileCommandHandler"),
	}
}

// Handle attaches the document and prompts for the comment.
func (h *AttachFileCommandHandler) Handle(ctx context.Context, cmd AttachFileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.repo.Get(ctx, cmd.SessionID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return h.notifier.SendPrompt(ctx, cmd.SessionID(), noActiveOrderText, []string{StartOrderSentinel})
		}
		return err
	}

	if !aggregate.ExpectsFile() {
		// A document arrived while text input is awaited.
		if err = h.notifier.SendMessage(ctx, cmd.SessionID(), "A file is not expected right now."); err != nil {
			return err
		}
		text, choices := promptFor(aggregate)
		return h.notifier.SendPrompt(ctx, cmd.SessionID(), text, choices)
	}

	attachment, err := order.NewAttachment(cmd.FileID(), cmd.FileName())
	if err != nil {
		return err
	}

	if err = aggregate.Attach(attachment); err != nil {
		return err
	}

	if err = h.repo.Save(ctx, aggregate); err != nil {
		return err
	}

	h.logger.Info("file attached",
		"session", cmd.SessionID().Int64(),
		"file", attachment.Name())

	text, choices := promptFor(aggregate)
	return h.notifier.SendPrompt(ctx, cmd.SessionID(), text, choices)
}
