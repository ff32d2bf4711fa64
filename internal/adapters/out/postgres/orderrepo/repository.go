package orderrepo

import (
	"context"
	"errors"
	"time"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/core/domain/model/order"
	"printery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save upserts the order row keyed by session, replacing all columns.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// Get retrieves the session's order.
func (r *GormOrderRepository) Get(ctx context.Context, sessionID kernel.SessionID) (*order.Order, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "session_id = ?", sessionID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", sessionID.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the session's order row, if any.
func (r *GormOrderRepository) Delete(ctx context.Context, sessionID kernel.SessionID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&OrderDTO{}, "session_id = ?", sessionID.Int64()).Error
}

// Exists reports whether the session has an order row.
func (r *GormOrderRepository) Exists(ctx context.Context, sessionID kernel.SessionID) (bool, error) {
	if err := sessionID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("session_id = ?", sessionID.Int64()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IdleSince returns all orders not touched since the cutoff.
func (r *GormOrderRepository) IdleSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("touched_at < ?", cutoff).
		Order("touched_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	stale := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		stale = append(stale, aggregate)
	}
	return stale, nil
}
