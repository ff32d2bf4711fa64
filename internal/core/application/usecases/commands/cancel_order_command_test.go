package commands_test

import (
	"testing"

	"printery/internal/core/application/usecases/commands"
	"printery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	sessionID := testSessionID(t)
	cmd, err := commands.NewCancelOrderCommand(sessionID)
	require.NoError(t, err)
	assert.Equal(t, sessionID, cmd.SessionID())
}

func TestNewCancelOrderCommand_InvalidSessionID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.SessionID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrSessionIDIsNotConstructed)
}

func TestCancelOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CancelOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}
