package commands_test

import (
	"testing"

	"printery/internal/core/application/usecases/commands"
	"printery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEditOrderCommandHandler_Handle_RestartsFresh(t *testing.T) {
	sessionID := testSessionID(t)
	cmd, err := commands.NewEditOrderCommand(sessionID)
	require.NoError(t, err)

	var saved *order.Order
	repo := new(MockOrderRepository)
	dispatcher := new(MockDispatcher)
	mock.InOrder(
		repo.On("Delete", mock.Anything, sessionID).Return(nil).Once(),
		repo.On("Save", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
	)
	dispatcher.On("SendPrompt", mock.Anything, sessionID, "Choose the print color:",
		order.ColorModeChoices()).Return(nil).Once()

	h := commands.NewEditOrderCommandHandler(repo, dispatcher, testLogger())
	require.NoError(t, h.Handle(t.Context(), cmd))

	require.NotNil(t, saved)
	assert.Equal(t, order.Started, saved.Stage())
	assert.Equal(t, order.ColorModeUnknown, saved.ColorMode())
	assert.Zero(t, saved.PageCount())
	assert.Nil(t, saved.Attachment())
	repo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}
