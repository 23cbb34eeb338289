// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the sales order read model, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting registered orders.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNo      string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerName string          `gorm:"type:varchar(255);not null;default:''"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	Currency     string          `gorm:"type:char(3);not null"`
	SalesStatus  string          `gorm:"type:varchar(64);not null;default:''"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:           order.ID().Bytes(),
		OrderNo:      order.OrderNo(),
		CustomerName: order.CustomerName(),
		TotalAmount:  order.TotalAmount(),
		Currency:     order.Currency().Code(),
		SalesStatus:  order.SalesStatus(),
	}
}

// toDomain converts a database DTO to an order, re-running its validation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	currency, err := kernel.NewCurrency(dto.Currency)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(id, dto.OrderNo, dto.CustomerName, dto.TotalAmount, currency, dto.SalesStatus)
}
