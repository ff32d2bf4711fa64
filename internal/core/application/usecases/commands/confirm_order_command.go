package commands

import (
	"errors"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents the session accepting the priced summary.
// Confirmation turns the order into an invoice and opens the payment phase.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm the session's order.
func NewConfirmOrderCommand(sessionID kernel.SessionID) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmOrderCommandIsNotConstructed if validation fails.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// SessionID returns the session that confirmed.
func (c ConfirmOrderCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

func (c *ConfirmOrderCommand) setSessionID(sessionID kernel.SessionID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
