package commands_test

import (
	"testing"

	"printery/internal/core/application/usecases/commands"
	"printery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditOrderCommand_ValidInput(t *testing.T) {
	sessionID := testSessionID(t)
	cmd, err := commands.NewEditOrderCommand(sessionID)
	require.NoError(t, err)
	assert.Equal(t, sessionID, cmd.SessionID())
}

func TestNewEditOrderCommand_InvalidSessionID(t *testing.T) {
	_, err := commands.NewEditOrderCommand(kernel.SessionID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrSessionIDIsNotConstructed)
}

func TestEditOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.EditOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrEditOrderCommandIsNotConstructed)
}
