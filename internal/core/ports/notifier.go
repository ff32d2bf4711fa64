package ports

import (
	"context"

	"printery/internal/core/domain/model/kernel"
)

// InvoiceSpec describes a payment invoice to present to the customer.
type InvoiceSpec struct {
	Title       string
	Description string
	Payload     string
	Currency    string
	AmountMinor int64
	NeedEmail   bool
	NeedPhone   bool
}

// NotificationDispatcher defines the outbound messaging contract.
// Implementations deliver prompts, invoices and operator alerts over
// the conversational transport.
type NotificationDispatcher interface {
	// SendPrompt sends a question to the customer together with the
	// choices they may answer with. An empty choices slice removes any
	// previously offered choices.
	SendPrompt(ctx context.Context, sessionID kernel.SessionID, text string, choices []string) error

	// SendMessage sends a plain text message to the customer.
	SendMessage(ctx context.Context, sessionID kernel.SessionID, text string) error

	// SendInvoice presents a payment invoice to the customer.
	SendInvoice(ctx context.Context, sessionID kernel.SessionID, invoice InvoiceSpec) error

	// AnswerPreCheckout approves or rejects a pre-checkout query.
	// The reason is shown to the customer on rejection and ignored on
	// approval.
	AnswerPreCheckout(ctx context.Context, queryID string, ok bool, reason string) error

	// NotifyOperator sends a message to the print shop operator.
	NotifyOperator(ctx context.Context, text string) error
}
