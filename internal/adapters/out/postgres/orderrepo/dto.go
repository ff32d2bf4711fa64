// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The session is the primary key because a session holds at most one order;
// saving under the same session replaces the row.
type OrderDTO struct {
	SessionID   int64     `gorm:"primaryKey;autoIncrement:false"`
	ID          uuid.UUID `gorm:"type:uuid"`
	Stage       int
	ColorMode   int
	SideMode    int
	PaperFormat int
	PageCount   int
	FileID      *string
	FileName    *string
	Comment     *string
	TouchedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Optional fields map to nullable columns.
func fromDomain(aggregate *order.Order) OrderDTO {
	var fileID, fileName, comment *string
	if a := aggregate.Attachment(); a != nil {
		id := a.FileID()
		name := a.Name()
		fileID = &id
		fileName = &name
	}
	if text := aggregate.Comment(); text != "" {
		comment = &text
	}

	return OrderDTO{
		SessionID:   aggregate.SessionID().Int64(),
		ID:          aggregate.ID().Bytes(),
		Stage:       int(aggregate.Stage()),
		ColorMode:   int(aggregate.ColorMode()),
		SideMode:    int(aggregate.SideMode()),
		PaperFormat: int(aggregate.PaperFormat()),
		PageCount:   aggregate.PageCount(),
		FileID:      fileID,
		FileName:    fileName,
		Comment:     comment,
		TouchedAt:   aggregate.TouchedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstruction goes through RestoreOrder so stored values are re-validated.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sessionID, err := kernel.NewSessionID(dto.SessionID)
	if err != nil {
		return nil, err
	}

	var attachment *order.Attachment
	if dto.FileID != nil {
		var name string
		if dto.FileName != nil {
			name = *dto.FileName
		}

		restored, attachErr := order.NewAttachment(*dto.FileID, name)
		if attachErr != nil {
			return nil, attachErr
		}
		attachment = &restored
	}

	var comment string
	if dto.Comment != nil {
		comment = *dto.Comment
	}

	return order.RestoreOrder(
		id,
		sessionID,
		order.Stage(dto.Stage),
		order.ColorMode(dto.ColorMode),
		order.SideMode(dto.SideMode),
		order.PaperFormat(dto.PaperFormat),
		dto.PageCount,
		attachment,
		comment,
		dto.TouchedAt,
	)
}
