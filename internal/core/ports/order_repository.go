package ports

import (
	"context"
	"time"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// A session holds at most one order, so all lookups are keyed by the
// session identifier.
type OrderRepository interface {
	// Save persists the order aggregate, replacing any order already
	// stored for the same session.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get retrieves the order for the given session.
	// Returns errs.ObjectNotFoundError when the session has no order.
	Get(ctx context.Context, sessionID kernel.SessionID) (*order.Order, error)

	// Delete removes the order for the given session, if any.
	// Deleting a session without an order is not an error.
	Delete(ctx context.Context, sessionID kernel.SessionID) error

	// Exists reports whether the session currently has an order.
	Exists(ctx context.Context, sessionID kernel.SessionID) (bool, error)

	// IdleSince returns all orders that have not been touched since
	// the cutoff. Used for stale order cleanup.
	IdleSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
