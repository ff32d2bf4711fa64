package commands

import (
	"errors"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to abandon the session's order.
// Works from any stage; cancelling a session without an order is harmless.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the session's order.
func NewCancelOrderCommand(sessionID kernel.SessionID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// SessionID returns the session whose order is cancelled.
func (c CancelOrderCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

func (c *CancelOrderCommand) setSessionID(sessionID kernel.SessionID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
