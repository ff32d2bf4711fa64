package queries

import (
	"context"
	"time"

	"printery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler reads in-flight orders from the database.
// Only available when the durable store is configured; the volatile store
// has no read model to project from.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle returns every stored order, oldest mutation first, so the most
// stale sessions surface at the top.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			session_id,
			id,
			stage,
			page_count,
			touched_at
		FROM orders
		ORDER BY touched_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingOrdersQueryResponse
		var id uuid.UUID
		var stage int
		var touchedAt time.Time

		err = rows.Scan(
			&resp.SessionID,
			&id,
			&stage,
			&resp.PageCount,
			&touchedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.OrderID = id.String()
		resp.Stage = order.Stage(stage).String()
		resp.TouchedAt = touchedAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
