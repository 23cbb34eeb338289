// Package ports defines repository interfaces for the order lifecycle domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the sales order read model.
// Orders are registered once and read afterwards; the lifecycle engine never
// changes them.
type OrderRepository interface {
	// Add persists a newly registered order.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every registered order sorted by order number.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
