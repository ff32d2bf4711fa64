package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/core/domain/model/order"
	"printery/internal/core/domain/services"
	"printery/internal/core/ports"
	"printery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const notProvidedText = "not provided"

// CompletePaymentCommandHandler finalizes a paid order.
// The final total is recomputed from the stored aggregate, never taken from
// the provider's echoed amount. The order is deleted exactly once, and only
// after both the customer confirmation and the operator notification went
// out, so a second confirmation for the same session finds no order and
// cannot fulfill twice.
type CompletePaymentCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.NotificationDispatcher
	pricer   services.PriceCalculator
	currency string
	logger   *slog.Logger
}

// NewCompletePaymentCommandHandler creates a handler for payment finalization.
func NewCompletePaymentCommandHandler(
	repo ports.OrderRepository,
	notifier ports.NotificationDispatcher,
	pricer services.PriceCalculator,
	currency string,
	logger *slog.Logger,
) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		repo:     repo,
		notifier: notifier,
		pricer:   pricer,
		currency: currency,
		logger:   logger.With("component", "CompletePaymentCommandHandler"),
	}
}

// Handle confirms the payment to the customer, forwards the order to the
// operator, and removes it from the store. A confirmation for a session
// without an order is reported to the user and not retried.
func (h *CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.repo.Get(ctx, cmd.SessionID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.Error("payment confirmation without stored order",
				"session", cmd.SessionID().Int64(),
				"charge", cmd.ChargeID())
			return h.notifier.SendMessage(ctx, cmd.SessionID(), "Error: order details not found.")
		}
		return err
	}

	quote, err := h.pricer.Quote(aggregate)
	if err != nil {
		return h.reportFailure(ctx, cmd.SessionID(), "final pricing failed", err)
	}

	if err = h.notifier.SendMessage(ctx, cmd.SessionID(), h.customerReceipt(aggregate, cmd, quote)); err != nil {
		return h.reportFailure(ctx, cmd.SessionID(), "customer confirmation dispatch failed", err)
	}

	if err = h.notifier.NotifyOperator(ctx, h.operatorNotice(aggregate, cmd, quote)); err != nil {
		return h.reportFailure(ctx, cmd.SessionID(), "operator notification dispatch failed", err)
	}

	if err = h.repo.Delete(ctx, cmd.SessionID()); err != nil {
		return err
	}

	h.logger.Info("payment completed",
		"session", cmd.SessionID().Int64(),
		"total", quote.String(),
		"charge", cmd.ChargeID())
	return nil
}

func (h *CompletePaymentCommandHandler) customerReceipt(
	aggregate *order.Order, cmd CompletePaymentCommand, quote decimal.Decimal,
) string {
	var b strings.Builder
	b.WriteString("✅ Payment successful!\n\n")
	b.WriteString("Order details:\n")
	fmt.Fprintf(&b, "Color: %s\n", aggregate.ColorMode())
	fmt.Fprintf(&b, "Sides: %s\n", aggregate.EffectiveSideMode())
	fmt.Fprintf(&b, "Total: %s %s\n", quote, h.currency)
	fmt.Fprintf(&b, "Email: %s\n", orFallback(cmd.PayerEmail()))
	fmt.Fprintf(&b, "Phone: %s\n\n", orFallback(cmd.PayerPhone()))
	b.WriteString("Your order is now in progress!")
	return b.String()
}

func (h *CompletePaymentCommandHandler) operatorNotice(
	aggregate *order.Order, cmd CompletePaymentCommand, quote decimal.Decimal,
) string {
	var b strings.Builder
	b.WriteString("💰 New paid order!\n")
	fmt.Fprintf(&b, "Session: %d\n", aggregate.SessionID().Int64())
	fmt.Fprintf(&b, "Order: %s\n", aggregate.ID())
	fmt.Fprintf(&b, "Color: %s\n", aggregate.ColorMode())
	fmt.Fprintf(&b, "Pages: %d\n", aggregate.PageCount())
	fmt.Fprintf(&b, "Format: %s\n", aggregate.PaperFormat())
	fmt.Fprintf(&b, "Sides: %s\n", aggregate.EffectiveSideMode())
	if a := aggregate.Attachment(); a != nil {
		fmt.Fprintf(&b, "File: %s\n", a.Name())
	}
	if aggregate.Comment() != "" {
		fmt.Fprintf(&b, "Comment: %s\n", aggregate.Comment())
	}
	fmt.Fprintf(&b, "Total: %s %s\n", quote, h.currency)
	fmt.Fprintf(&b, "Email: %s\n", orFallback(cmd.PayerEmail()))
	fmt.Fprintf(&b, "Phone: %s\n", orFallback(cmd.PayerPhone()))
	fmt.Fprintf(&b, "Charge ID: %s", cmd.ChargeID())
	return b.String()
}

func (h *CompletePaymentCommandHandler) reportFailure(
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

func orFallback(value string) string {
	if value == "" {
		return notProvidedText
	}
	return value
}
