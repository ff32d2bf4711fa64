package commands

import (
	"errors"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
	ErrInputTextIsRequired = errors.New("input text is required")
)

// AdvanceOrderCommand carries one text input for the session's order.
// The handler decodes it against the stage the order is currently in.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID
	text      string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command from one inbound text message.
// Returns an error if the session is invalid or the text is empty.
func NewAdvanceOrderCommand(sessionID kernel.SessionID, text string) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setText(text),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// SessionID returns the session the input belongs to.
func (c AdvanceOrderCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// Text returns the raw input text.
func (c AdvanceOrderCommand) Text() string {
	return c.text
}

func (c *AdvanceOrderCommand) setSessionID(sessionID kernel.SessionID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *AdvanceOrderCommand) setText(text string) error {
	if text == "" {
		return ErrInputTextIsRequired
	}

	c.text = text
	return nil
}
