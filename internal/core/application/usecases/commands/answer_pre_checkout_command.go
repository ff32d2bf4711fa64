package commands

import (
	"errors"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/pkg/guard"
)

var (
	ErrAnswerPreCheckoutCommandIsNotConstructed = errors.New(
		"AnswerPreCheckoutCommand must be created via NewAnswerPreCheckoutCommand constructor",
	)
	ErrQueryIDIsRequired = errors.New("query id is required")
)

// AnswerPreCheckoutCommand carries the payment provider's pre-checkout query
// for a session. The answer decides whether the provider may charge.
type AnswerPreCheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID
	queryID   string

	guard guard.ConstructorGuard
}

// NewAnswerPreCheckoutCommand creates a command from one pre-checkout query.
func NewAnswerPreCheckoutCommand(sessionID kernel.SessionID, queryID string) (AnswerPreCheckoutCommand, error) {
	cmd := AnswerPreCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setQueryID(queryID),
	); err != nil {
		return AnswerPreCheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAnswerPreCheckoutCommandIsNotConstructed if validation fails.
func (c AnswerPreCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrAnswerPreCheckoutCommandIsNotConstructed)
}

// SessionID returns the session the query belongs to.
func (c AnswerPreCheckoutCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// QueryID returns the provider's query identifier to answer.
func (c AnswerPreCheckoutCommand) QueryID() string {
	return c.queryID
}

func (c *AnswerPreCheckoutCommand) setSessionID(sessionID kernel.SessionID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *AnswerPreCheckoutCommand) setQueryID(queryID string) error {
	if queryID == "" {
		return ErrQueryIDIsRequired
	}

	c.queryID = queryID
	return nil
}
