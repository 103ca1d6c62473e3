// Package orderrepo provides data transfer objects and mapping functions for order
// persistence. It implements the repository pattern for the order aggregate,
// handling the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its wire value ("PENDING", ...) and indexed to keep the
// sweep and status-filtered listings cheap. Timestamps are owned by the domain, so
// GORM's automatic time tracking is disabled.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName  string
	CustomerEmail string
	Status        string    `gorm:"type:varchar(16);index"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
	Items         []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted line item row. Items always belong to exactly
// one order and are written and deleted together with it.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductName string
	Quantity    int
	Price       float64
}

// TableName specifies the database table name for line item entities.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an order aggregate to its database representation,
// line items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerName:  aggregate.CustomerName(),
		CustomerEmail: aggregate.CustomerEmail(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Items:         itemDTOs,
	}
}

// toDomain converts a database DTO back into an order aggregate, rebuilding the
// items and their ownership via the restore factories.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, idErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.RestoreItem(itemID, itemDTO.ProductName, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerEmail,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
		items,
	)
}
