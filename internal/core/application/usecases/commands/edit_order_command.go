package commands

import (
	"errors"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents a request to redo the session's order from the
// beginning. The old aggregate is discarded entirely so no field from the
// prior attempt leaks into the new one.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to restart the session's order.
func NewEditOrderCommand(sessionID kernel.SessionID) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditOrderCommandIsNotConstructed if validation fails.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// SessionID returns the session whose order is restarted.
func (c EditOrderCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

func (c *EditOrderCommand) setSessionID(sessionID kernel.SessionID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
