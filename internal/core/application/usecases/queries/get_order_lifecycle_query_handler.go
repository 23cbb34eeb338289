package queries

import (
	"context"

	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/services"
)

// GetOrderLifecycleQueryHandler recomputes the snapshot of an order from its
// stored configuration and expense ledger on every call.
type GetOrderLifecycleQueryHandler struct {
	readers ReaderFactory
	builder services.SnapshotBuilder
}

func NewGetOrderLifecycleQueryHandler(
	readers ReaderFactory,
	builder services.SnapshotBuilder,
) GetOrderLifecycleQueryHandler {
	return GetOrderLifecycleQueryHandler{readers: readers, builder: builder}
}

// Handle returns errs.ObjectNotFoundError for an unknown order or an order
// that was never configured.
func (h GetOrderLifecycleQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLifecycleQuery,
) (services.LifecycleSnapshot, error) {
	if err := query.Validate(); err != nil {
		return services.LifecycleSnapshot{}, err
	}

	reader := h.readers.Create()

	o, err := reader.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return services.LifecycleSnapshot{}, err
	}

	cfg, err := reader.LifecycleConfigRepository().Get(ctx, query.OrderID())
	if err != nil {
		return services.LifecycleSnapshot{}, err
	}

	expenses, err := reader.ExpenseRepository().GetByOrder(ctx, query.OrderID())
	if err != nil {
		return services.LifecycleSnapshot{}, err
	}

	ledger, err := expense.NewLedger(query.OrderID(), expenses)
	if err != nil {
		return services.LifecycleSnapshot{}, err
	}

	return h.builder.Build(o, cfg, ledger)
}
