package commands

import (
	"errors"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/pkg/guard"
)

var ErrCompletePaymentCommandIsNotConstructed = errors.New(
	"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
)

// CompletePaymentCommand carries the provider's successful payment
// confirmation. Payer contact fields are optional; the provider does not
// always supply them.
type CompletePaymentCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.SessionID
	payerEmail string
	payerPhone string
	chargeID   string

	guard guard.ConstructorGuard
}

// NewCompletePaymentCommand creates a command from one payment confirmation.
func NewCompletePaymentCommand(
	sessionID kernel.SessionID, payerEmail, payerPhone, chargeID string,
) (CompletePaymentCommand, error) {
	cmd := CompletePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return CompletePaymentCommand{}, err
	}

	cmd.payerEmail = payerEmail
	cmd.payerPhone = payerPhone
	cmd.chargeID = chargeID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompletePaymentCommandIsNotConstructed if validation fails.
func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

// SessionID returns the session that paid.
func (c CompletePaymentCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// PayerEmail returns the payer's email, possibly empty.
func (c CompletePaymentCommand) PayerEmail() string {
	return c.payerEmail
}

// PayerPhone returns the payer's phone number, possibly empty.
func (c CompletePaymentCommand) PayerPhone() string {
	return c.payerPhone
}

// ChargeID returns the provider's charge identifier.
func (c CompletePaymentCommand) ChargeID() string {
	return c.chargeID
}

func (c *CompletePaymentCommand) setSessionID(sessionID kernel.SessionID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
