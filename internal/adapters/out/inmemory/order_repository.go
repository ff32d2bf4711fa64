// Package inmemory provides the default volatile order store.
// Orders live in process memory keyed by session, matching the reference
// behavior of keeping in-flight orders only for the lifetime of the process.
package inmemory

import (
	"context"
	"sync"
	"time"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/core/domain/model/order"
	"printery/internal/pkg/errs"
)

// OrderRepository is a mutex-guarded map of session to order.
// Save replaces wholesale, so restarting an order never merges fields from
// the prior attempt. Save and Get copy the aggregate, so a caller mutating
// its instance changes nothing in the store until the next Save; uncommitted
// mutations on a failed path stay uncommitted, same as with a database row.
// Safe for concurrent per-key access.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[int64]*order.Order
}

// NewOrderRepository creates an empty volatile order store.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[int64]*order.Order),
	}
}

// Save stores a copy of the aggregate, replacing any order the session
// already had.
func (r *OrderRepository) Save(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := snapshot(aggregate)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[aggregate.SessionID().Int64()] = stored
	return nil
}

// Get returns a copy of the order for the session.
// Returns errs.ObjectNotFoundError when the session has no order.
func (r *OrderRepository) Get(_ context.Context, sessionID kernel.SessionID) (*order.Order, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, ok := r.orders[sessionID.Int64()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", sessionID.Int64())
	}
	return snapshot(aggregate)
}

// Delete removes the session's order. Removing a session without an order
// is a no-op.
func (r *OrderRepository) Delete(_ context.Context, sessionID kernel.SessionID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, sessionID.Int64())
	return nil
}

// Exists reports whether the session currently has an order.
func (r *OrderRepository) Exists(_ context.Context, sessionID kernel.SessionID) (bool, error) {
	if err := sessionID.Validate(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.orders[sessionID.Int64()]
	return ok, nil
}

// IdleSince returns copies of the orders not touched since the cutoff.
func (r *OrderRepository) IdleSince(_ context.Context, cutoff time.Time) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stale := make([]*order.Order, 0)
	for _, aggregate := range r.orders {
		if aggregate.TouchedAt().Before(cutoff) {
			copied, err := snapshot(aggregate)
			if err != nil {
				return nil, err
			}
			stale = append(stale, copied)
		}
	}
	return stale, nil
}

// snapshot rebuilds the aggregate from its state, detaching the stored
// instance from the caller's.
func snapshot(aggregate *order.Order) (*order.Order, error) {
	var attachment *order.Attachment
	if a := aggregate.Attachment(); a != nil {
		copied := *a
		attachment = &copied
	}

	return order.RestoreOrder(
		aggregate.ID(),
		aggregate.SessionID(),
		aggregate.Stage(),
		aggregate.ColorMode(),
		aggregate.SideMode(),
		aggregate.PaperFormat(),
		aggregate.PageCount(),
		attachment,
		aggregate.Comment(),
		aggregate.TouchedAt(),
	)
}
