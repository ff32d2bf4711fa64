// Package queries contains read-only operations over the durable store.
// Query handlers bypass the aggregates and read projections directly,
// following the CQRS split used by the command side.
package queries

import (
	"errors"
	"time"

	"printery/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves every order currently in flight.
// Gives the operator visibility into sessions that started an order but have
// not paid or cancelled yet.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for all in-flight orders.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingOrdersQueryIsNotConstructed if validation fails.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse is one in-flight order row.
// Stage is the human-readable stage name; TouchedAt is the last mutation
// instant, which the operator can read as "how long has this been stuck".
type GetPendingOrdersQueryResponse struct {
	SessionID int64     `json:"session_id"`
	OrderID   string    `json:"order_id"`
	Stage     string    `json:"stage"`
	PageCount int       `json:"page_count"`
	TouchedAt time.Time `json:"touched_at"`
}
