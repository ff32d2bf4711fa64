package commands

import (
	"errors"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand represents a request to open a fresh order for a session.
// Any order the session already has is replaced entirely.
//
// Example:
//
//	sessionID, _ := kernel.NewSessionID(chatID)
//	cmd, err := NewStartOrderCommand(sessionID)
//	if err != nil {
//	    return fmt.Errorf("invalid session: %w", err)
//	}
//
//	handler := NewStartOrderCommandHandler(repo, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start order: %w", err)
//	}
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID

	guard guard.ConstructorGuard
}

// NewStartOrderCommand creates a command to open an order for the session.
// Returns an error if the session identifier is invalid.
func NewStartOrderCommand(sessionID kernel.SessionID) (StartOrderCommand, error) {
	cmd := StartOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return StartOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartOrderCommandIsNotConstructed if validation fails.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

// SessionID returns the session the order belongs to.
func (c StartOrderCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

func (c *StartOrderCommand) setSessionID(sessionID kernel.SessionID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
