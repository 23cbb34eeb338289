package ports

import (
	"context"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
)

// LifecycleConfigRepository defines the persistence contract for lifecycle
// configurations. There is at most one configuration per order, keyed by the
// order id.
type LifecycleConfigRepository interface {
	// Add persists the first configuration of an order.
	// Fails if the order already has one.
	Add(ctx context.Context, cfg lifecycle.Config) error

	// Update replaces the stored configuration of cfg.OrderID(), milestones
	// included. Last write wins.
	Update(ctx context.Context, cfg lifecycle.Config) error

	// Get retrieves the configuration of an order.
	// Returns errs.ObjectNotFoundError when the order was never configured.
	Get(ctx context.Context, orderID kernel.UUID) (lifecycle.Config, error)

	// GetAll retrieves every stored configuration.
	GetAll(ctx context.Context) ([]lifecycle.Config, error)
}
