package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/core/domain/services"
	"printery/internal/core/ports"
	"printery/internal/pkg/errs"
)

const paymentApologyText = "Sorry, something went wrong. We are already looking into it."

// ConfirmOrderCommandHandler turns a confirmed order into a payment invoice.
// The price is recomputed from the aggregate at this boundary; nothing cached
// at summary time is trusted. Failures on this path are never silent: the
// user gets an apology and the operator gets the raw error.
type ConfirmOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.NotificationDispatcher
	pricer   services.PriceCalculator
	currency string
	logger   *slog.Logger
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(
	repo ports.OrderRepository,
	notifier ports.NotificationDispatcher,
	pricer services.PriceCalculator,
	currency string,
	logger *slog.Logger,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
		pricer:   pricer,
		currency: currency,
		logger:   logger.With("component", "ConfirmOrderCommandHandler"),
	}
}

// Handle confirms the order, issues the invoice, and moves the order to
// AwaitingPayment. Confirming out of turn re-prompts instead of failing.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	if confirmErr := aggregate.Confirm(); confirmErr != nil {
		if !isRetryable(confirmErr) {
			return confirmErr
		}
		text, choices := promptFor(aggregate)
		return h.notifier.SendPrompt(ctx, cmd.SessionID(), text, choices)
	}

	quote, err := h.pricer.Quote(aggregate)
	if err != nil {
		return h.reportFailure(ctx, cmd.SessionID(), "invoice pricing failed", err)
	}

	invoice := ports.InvoiceSpec{
		Title:       "Print payment",
		Description: fmt.Sprintf("%s print, %s", aggregate.ColorMode(), aggregate.PaperFormat()),
		Payload:     fmt.Sprintf("order_%d", cmd.SessionID().Int64()),
		Currency:    h.currency,
		AmountMinor: services.MinorUnits(quote),
		NeedEmail:   true,
		NeedPhone:   true,
	}

	if err = h.notifier.SendInvoice(ctx, cmd.SessionID(), invoice); err != nil {
		return h.reportFailure(ctx, cmd.SessionID(), "invoice dispatch failed", err)
	}

	if err = aggregate.AwaitPayment(); err != nil {
		return err
	}

	if err = h.repo.Save(ctx, aggregate); err != nil {
		return err
	}

	h.logger.Info("invoice issued",
		"session", cmd.SessionID().Int64(),
		"amount_minor", invoice.AmountMinor,
		"currency", invoice.Currency)

	return nil
}

// reportFailure logs the error, apologizes to the user, and alerts the
// operator with the session and the raw error.
func (h *ConfirmOrderCommandHandler) reportFailure(
	ctx context.Context, sessionID kernel.SessionID, msg string, cause error,
) error {
	h.logger.Error(msg, "session", sessionID.Int64(), "error", cause)

	if err := h.notifier.SendMessage(ctx, sessionID, paymentApologyText); err != nil {
		return errors.Join(cause, err)
	}

	alert := fmt.Sprintf("⚠️ Payment error for session %d:\n%s", sessionID.Int64(), cause)
	if err := h.notifier.NotifyOperator(ctx, alert); err != nil {
		return errors.Join(cause, err)
	}

	return errs.NewPaymentProcessingError(sessionID.Int64(), cause)
}
