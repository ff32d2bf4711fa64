package inmemory_test

import (
	"sync"
	"testing"
	"time"

	"printery/internal/adapters/out/inmemory"
	"printery/internal/core/domain/model/kernel"
	"printery/internal/core/domain/model/order"
	"printery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionID(t *testing.T, id int64) kernel.SessionID {
	t.Helper()
	sessionID, err := kernel.NewSessionID(id)
	require.NoError(t, err)
	return sessionID
}

func TestOrderRepository_SaveAndGet(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewOrderRepository()
	sessionID := newSessionID(t, 1)

	aggregate, err := order.NewOrder(sessionID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, aggregate))

	got, err := repo.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, aggregate.IsEqual(got))
}

func TestOrderRepository_Get_NotFound(t *testing.T) {
	repo := inmemory.NewOrderRepository()
	_, err := repo.Get(t.Context(), newSessionID(t, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderRepository_Save_ReplacesPriorOrder(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewOrderRepository()
	sessionID := newSessionID(t, 1)

	first, err := order.NewOrder(sessionID)
	require.NoError(t, err)
	require.NoError(t, first.ChooseColor(order.Color))
	require.NoError(t, repo.Save(ctx, first))

	second, err := order.NewOrder(sessionID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, second.IsEqual(got))
	assert.Equal(t, order.Started, got.Stage())
	assert.Equal(t, order.ColorModeUnknown, got.ColorMode())
}

func TestOrderRepository_Get_ReturnsDetachedCopy(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewOrderRepository()
	sessionID := newSessionID(t, 1)

	aggregate, err := order.NewOrder(sessionID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, aggregate))

	fetched, err := repo.Get(ctx, sessionID)
	require.NoError(t, err)
	require.NoError(t, fetched.ChooseColor(order.Color))

	// the mutation is not committed until the copy is saved back
	stored, err := repo.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, order.Started, stored.Stage())
	assert.Equal(t, order.ColorModeUnknown, stored.ColorMode())
}

func TestOrderRepository_Save_DetachesFromCaller(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewOrderRepository()
	sessionID := newSessionID(t, 1)

	aggregate, err := order.NewOrder(sessionID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, aggregate))
	require.NoError(t, aggregate.ChooseColor(order.Monochrome))

	stored, err := repo.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, order.ColorModeUnknown, stored.ColorMode())
}

func TestOrderRepository_Delete(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewOrderRepository()
	sessionID := newSessionID(t, 1)

	aggregate, err := order.NewOrder(sessionID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, aggregate))
	require.NoError(t, repo.Delete(ctx, sessionID))

	exists, err := repo.Exists(ctx, sessionID)
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting again is not an error
	require.NoError(t, repo.Delete(ctx, sessionID))
}

func TestOrderRepository_IdleSince(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewOrderRepository()

	stale, err := order.NewOrder(newSessionID(t, 1))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, stale))

	cutoff := time.Now().UTC().Add(time.Minute)

	fresh, err := order.NewOrder(newSessionID(t, 2))
	require.NoError(t, err)
	fresh2, err := order.RestoreOrder(
		fresh.ID(), fresh.SessionID(), order.Started,
		order.ColorModeUnknown, order.SideModeUnknown, order.PaperFormatUnknown,
		0, nil, "", cutoff.Add(time.Minute),
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, fresh2))

	idle, err := repo.IdleSince(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, idle, 1)
	assert.True(t, stale.IsEqual(idle[0]))
}

func TestOrderRepository_IdleSince_ConcurrentWithMutations(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewOrderRepository()
	sessionID := newSessionID(t, 1)

	aggregate, err := order.NewOrder(sessionID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, aggregate))

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for range 100 {
			fetched, getErr := repo.Get(ctx, sessionID)
			assert.NoError(t, getErr)
			assert.NoError(t, fetched.ChooseColor(order.Color))
			assert.NoError(t, repo.Save(ctx, fetched))
			assert.NoError(t, repo.Save(ctx, aggregate))
		}
	}()

	go func() {
		defer wg.Done()
		cutoff := time.Now().UTC().Add(time.Minute)
		for range 100 {
			idle, idleErr := repo.IdleSince(ctx, cutoff)
			assert.NoError(t, idleErr)
			for _, stale := range idle {
				_ = stale.TouchedAt()
				_ = stale.Stage()
			}
		}
	}()

	wg.Wait()
}

func TestOrderRepository_ConcurrentAccess(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewOrderRepository()

	var wg sync.WaitGroup
	for i := int64(1); i <= 100; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			sessionID, err := kernel.NewSessionID(id)
			assert.NoError(t, err)
			aggregate, err := order.NewOrder(sessionID)
			assert.NoError(t, err)
			assert.NoError(t, repo.Save(ctx, aggregate))
			_, err = repo.Get(ctx, sessionID)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := int64(1); i <= 100; i++ {
		exists, err := repo.Exists(ctx, newSessionID(t, i))
		require.NoError(t, err)
		assert.True(t, exists)
	}
}
