package commands_test

import (
	"strings"
	"testing"

	"printery/internal/core/application/usecases/commands"
	"printery/internal/core/domain/model/kernel"
	"printery/internal/core/domain/model/order"
	"printery/internal/core/domain/services"
	"printery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdvanceHandler(repo *MockOrderRepository, dispatcher *MockDispatcher) commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(
		repo, dispatcher, services.NewPriceCalculator(), "RUB", testLogger())
}

func advance(t *testing.T, h commands.AdvanceOrderCommandHandler, sessionID kernel.SessionID, text string) error {
	t.Helper()
	cmd, err := commands.NewAdvanceOrderCommand(sessionID, text)
	require.NoError(t, err)
	return h.Handle(t.Context(), cmd)
}

func TestAdvanceOrderCommandHandler_Handle_ColorChoice(t *testing.T) {
	sessionID := testSessionID(t)
	aggregate, err := order.NewOrder(sessionID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	dispatcher := new(MockDispatcher)
	repo.On("Get", mock.Anything, sessionID).Return(aggregate, nil).Once()
	repo.On("Save", mock.Anything, aggregate).Return(nil).Once()
	dispatcher.On("SendPrompt", mock.Anything, sessionID, "Enter the number of pages:", []string(nil)).
		Return(nil).Once()

	h := newAdvanceHandler(repo, dispatcher)
	require.NoError(t, advance(t, h, sessionID, "Color"))
	assert.Equal(t, order.ColorChosen, aggregate.Stage())
	assert.Equal(t, order.Color, aggregate.ColorMode())
	repo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_InvalidInputDoesNotAdvance(t *testing.T) {
	sessionID := testSessionID(t)
	aggregate, err := order.NewOrder(sessionID)
	require.NoError(t, err)
	require.NoError(t, aggregate.ChooseColor(order.Monochrome))

	repo := new(MockOrderRepository)
	dispatcher := new(MockDispatcher)
	repo.On("Get", mock.Anything, sessionID).Return(aggregate, nil).Once()
	dispatcher.On("SendMessage", mock.Anything, sessionID, mock.AnythingOfType("string")).Return(nil).Once()
	dispatcher.On("SendPrompt", mock.Anything, sessionID, "Enter the number of pages:", []string(nil)).
		Return(nil).Once()

	h := newAdvanceHandler(repo, dispatcher)
	require.NoError(t, advance(t, h, sessionID, "many"))
	assert.Equal(t, order.ColorChosen, aggregate.Stage())
	repo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_NoActiveOrder(t *testing.T) {
	sessionID := testSessionID(t)

	repo := new(MockOrderRepository)
	dispatcher := new(MockDispatcher)
	repo.On("Get", mock.Anything, sessionID).
		Return(nil, errs.NewObjectNotFoundError("order", sessionID.Int64())).Once()
	dispatcher.On("SendPrompt", mock.Anything, sessionID, mock.AnythingOfType("string"),
		[]string{commands.StartOrderSentinel}).Return(nil).Once()

	h := newAdvanceHandler(repo, dispatcher)
	require.NoError(t, advance(t, h, sessionID, "Color"))
	repo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_TextWhileFileAwaited(t *testing.T) {
	sessionID := testSessionID(t)
	aggregate, err := order.NewOrder(sessionID)
	require.NoError(t, err)
	require.NoError(t, aggregate.ChooseColor(order.Monochrome))
	require.NoError(t, aggregate.SetPageCount(1))
	require.NoError(t, aggregate.ChooseFormat(order.FormatA4))
	require.True(t, aggregate.ExpectsFile())

	repo := new(MockOrderRepository)
	dispatcher := new(MockDispatcher)
	repo.On("Get", mock.Anything, sessionID).Return(aggregate, nil).Once()
	dispatcher.On("SendPrompt", mock.Anything, sessionID,
		mock.MatchedBy(func(text string) bool { return strings.Contains(text, "attach the file") }),
		[]string(nil)).Return(nil).Once()

	h := newAdvanceHandler(repo, dispatcher)
	require.NoError(t, advance(t, h, sessionID, "here is my file"))
	assert.Equal(t, order.FormatChosen, aggregate.Stage())
	repo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_SkipCommentShowsSummary(t *testing.T) {
	sessionID := testSessionID(t)
	aggregate, err := order.NewOrder(sessionID)
	require.NoError(t, err)
	require.NoError(t, aggregate.ChooseColor(order.Monochrome))
	require.NoError(t, aggregate.SetPageCount(1))
	require.NoError(t, aggregate.ChooseFormat(order.FormatA4))
	attachment, err := order.NewAttachment("file-1", "notes.pdf")
	require.NoError(t, err)
	require.NoError(t, aggregate.Attach(attachment))

	repo := new(MockOrderRepository)
	dispatcher := new(MockDispatcher)
	repo.On("Get", mock.Anything, sessionID).Return(aggregate, nil).Once()
	repo.On("Save", mock.Anything, aggregate).Return(nil).Once()
	dispatcher.On("SendPrompt", mock.Anything, sessionID,
		mock.MatchedBy(func(text string) bool {
			// mono, 1 page, A4: 10 x 1 x 1.5
			return strings.Contains(text, "Total: 15 RUB") && strings.Contains(text, "notes.pdf")
		}),
		[]string{commands.ConfirmSentinel, commands.EditSentinel, commands.CancelSentinel}).
		Return(nil).Once()

	h := newAdvanceHandler(repo, dispatcher)
	require.NoError(t, advance(t, h, sessionID, commands.SkipSentinel))
	assert.Equal(t, order.SummaryShown, aggregate.Stage())
	repo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_CommentShowsSummary(t *testing.T) {
	sessionID := testSessionID(t)
	aggregate, err := order.NewOrder(sessionID)
	require.NoError(t, err)
	require.NoError(t, aggregate.ChooseColor(order.Color))
	require.NoError(t, aggregate.SetPageCount(5))
	require.NoError(t, aggregate.ChooseFormat(order.FormatA3))
	require.NoError(t, aggregate.ChooseSide(order.DoubleSided))
	attachment, err := order.NewAttachment("file-2", "poster.pdf")
	require.NoError(t, err)
	require.NoError(t, aggregate.Attach(attachment))

	repo := new(MockOrderRepository)
	dispatcher := new(MockDispatcher)
	repo.On("Get", mock.Anything, sessionID).Return(aggregate, nil).Once()
	repo.On("Save", mock.Anything, aggregate).Return(nil).Once()
	dispatcher.On("SendPrompt", mock.Anything, sessionID,
		mock.MatchedBy(func(text string) bool {
			// color, 5 pages, double-sided, A3: 30 x 5 x 2
			return strings.Contains(text, "Total: 300 RUB") && strings.Contains(text, "Comment: staple it")
		}),
		mock.Anything).Return(nil).Once()

	h := newAdvanceHandler(repo, dispatcher)
	require.NoError(t, advance(t, h, sessionID, "staple it"))
	assert.Equal(t, order.SummaryShown, aggregate.Stage())
	assert.Equal(t, "staple it", aggregate.Comment())
	repo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}
