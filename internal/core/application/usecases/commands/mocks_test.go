package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/core/domain/model/order"
	"printery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, sessionID kernel.SessionID) (*order.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, sessionID kernel.SessionID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockOrderRepository) Exists(ctx context.Context, sessionID kernel.SessionID) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) IdleSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) SendPrompt(ctx context.Context, sessionID kernel.SessionID, text string, choices []string) error {
	args := m.Called(ctx, sessionID, text, choices)
	return args.Error(0)
}

func (m *MockDispatcher) SendMessage(ctx context.Context, sessionID kernel.SessionID, text string) error {
	args := m.Called(ctx, sessionID, text)
	return args.Error(0)
}

func (m *MockDispatcher) SendInvoice(ctx context.Context, sessionID kernel.SessionID, invoice ports.InvoiceSpec) error {
	args := m.Called(ctx, sessionID, invoice)
	return args.Error(0)
}

func (m *MockDispatcher) AnswerPreCheckout(ctx context.Context, queryID string, ok bool, reason string) error {
	args := m.Called(ctx, queryID, ok, reason)
	return args.Error(0)
}

func (m *MockDispatcher) NotifyOperator(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSessionID(t *testing.T) kernel.SessionID {
	t.Helper()
	sessionID, err := kernel.NewSessionID(4242)
	require.NoError(t, err)
	return sessionID
}

// orderAtSummary walks a fresh order to the SummaryShown stage.
func orderAtSummary(t *testing.T, sessionID kernel.SessionID) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(sessionID)
	require.NoError(t, err)
	require.NoError(t, aggregate.ChooseColor(order.Monochrome))
	require.NoError(t, aggregate.SetPageCount(2))
	require.NoError(t, aggregate.ChooseFormat(order.FormatA4))
	require.NoError(t, aggregate.ChooseSide(order.DoubleSided))

	attachment, err := order.NewAttachment("file-1", "thesis.pdf")
	require.NoError(t, err)
	require.NoError(t, aggregate.Attach(attachment))
	require.NoError(t, aggregate.SkipComment())
	require.NoError(t, aggregate.ShowSummary())
	return aggregate
}

// orderAwaitingPayment walks a fresh order all the way to AwaitingPayment.
func orderAwaitingPayment(t *testing.T, sessionID kernel.SessionID) *order.Order {
	t.Helper()

	aggregate := orderAtSummary(t, sessionID)
	require.NoError(t, aggregate.Confirm())
	require.NoError(t, aggregate.AwaitPayment())
	return aggregate
}
