package commands

import (
	"context"
	"errors"
	"log/slog"

	"printery/internal/core/domain/model/order"
	"printery/internal/core/domain/services"
	"printery/internal/core/ports"
	"printery/internal/pkg/errs"
)

const noActiveOrderText = "No active order. Send " + StartOrderSentinel + " to begin."

// AdvanceOrderCommandHandler moves an order forward by one stage.
// It decodes the input against the stage the order is in right now: a choice
// label, a page count, a comment, or the skip sentinel. Invalid input never
// advances the order; the session is re-prompted for the same stage.
type AdvanceOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.NotificationDispatcher
	pricer   services.PriceCalculator
	currency string
	logger   *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler that routes text input
// through the order state machine.
func NewAdvanceOrderCommandHandler(
	repo ports.OrderRepository,
	notifier ports.NotificationDispatcher,
	pricer services.PriceCalculator,
	currency string,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
		pricer:   pricer,
		currency: currency,
		logger:   logger.With("component", "AdvanceOrderCommandHandler"),
	}
}

// Handle applies one input to the session's order.
// A session without an order is pointed back to the start sentinel. After the
// comment stage resolves, the priced summary is shown in the same pass.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	if aggregate.ExpectsFile() {
		// Text arrived while a file is awaited. Re-prompt, do not advance.
		return h.notifier.SendPrompt(ctx, cmd.SessionID(), filePromptText, nil)
	}

	if applyErr := h.apply(aggregate, cmd.Text()); applyErr != nil {
		if !isRetryable(applyErr) {
			return applyErr
		}

		h.logger.Warn("input rejected",
			"session", cmd.SessionID().Int64(),
			"stage", aggregate.Stage().String(),
			"error", applyErr)

		if err = h.notifier.SendMessage(ctx, cmd.SessionID(), "That does not look right, please try again."); err != nil {
			return err
		}
		text, choices := promptFor(aggregate)
		return h.notifier.SendPrompt(ctx, cmd.SessionID(), text, choices)
	}

	if aggregate.Stage() == order.CommentResolved {
		return h.showSummary(ctx, aggregate)
	}

	if err = h.repo.Save(ctx, aggregate); err != nil {
		return err
	}

	text, choices := promptFor(aggregate)
	return h.notifier.SendPrompt(ctx, cmd.SessionID(), text, choices)
}

// apply decodes the text for the current stage and mutates the aggregate.
func (h *AdvanceOrderCommandHandler) apply(aggregate *order.Order, text string) error {
	switch aggregate.Stage() {
	case order.Started:
		mode, err := order.ParseColorMode(text)
		if err != nil {
			return err
		}
		return aggregate.ChooseColor(mode)

	case order.ColorChosen:
		count, err := order.ParsePageCount(text)
		if err != nil {
			return err
		}
		return aggregate.SetPageCount(count)

	case order.PageCountSet:
		format, err := order.ParsePaperFormat(text)
		if err != nil {
			return err
		}
		return aggregate.ChooseFormat(format)

	case order.FormatChosen:
		mode, err := order.ParseSideMode(text)
		if err != nil {
			return err
		}
		return aggregate.ChooseSide(mode)

	case order.FileAttached:
		if text == SkipSentinel {
			return aggregate.SkipComment()
		}
		return aggregate.SetComment(text)

	default:
		// SummaryShown and later stages only accept the confirm, edit and
		// cancel sentinels, which the inbound adapter routes before this
		// handler runs. Anything else re-prompts.
		return errs.NewValueIsInvalidError("input for stage " + aggregate.Stage().String())
	}
}

// showSummary recomputes the price, marks the summary shown, and sends the
// recap with the confirmation keyboard.
func (h *AdvanceOrderCommandHandler) showSummary(ctx context.Context, aggregate *order.Order) error {
	quote, err := h.pricer.Quote(aggregate)
	if err != nil {
		return err
	}

	if err = aggregate.ShowSummary(); err != nil {
		return err
	}

	if err = h.repo.Save(ctx, aggregate); err != nil {
		return err
	}

	h.logger.Info("summary shown",
		"session", aggregate.SessionID().Int64(),
		"total", quote.String())

	return h.notifier.SendPrompt(ctx, aggregate.SessionID(),
		renderSummary(aggregate, quote, h.currency), summaryChoices())
}

// isRetryable reports whether the error is a bad-input condition that should
// re-prompt the same stage instead of failing the request.
func isRetryable(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, errs.ErrValueIsRequired)
}
