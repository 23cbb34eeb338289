package queries

import (
	"context"

	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/core/domain/services"
)

// GetDashboardQueryHandler builds the portfolio dashboard.
//
// Example:
//
//	handler := NewGetDashboardQueryHandler(readers, builder)
//	dashboard, err := handler.Handle(ctx, NewGetDashboardQuery())
//	for _, row := range dashboard.ByStatus {
//	    fmt.Printf("%s: %d orders, profit %s\n", row.Status, row.Orders, row.ActualProfit)
//	}
type GetDashboardQueryHandler struct {
	readers ReaderFactory
	builder services.SnapshotBuilder
}

func NewGetDashboardQueryHandler(readers ReaderFactory, builder services.SnapshotBuilder) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{readers: readers, builder: builder}
}

// Handle loads orders, configurations and expenses in three reads, rebuilds
// every snapshot and folds them.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (services.Dashboard, error) {
	snapshots, err := h.Snapshots(ctx, query)
	if err != nil {
		return services.Dashboard{}, err
	}
	return services.FoldDashboard(snapshots), nil
}

// Snapshots returns the snapshot of every configured order, sorted by order
// number. It backs both the dashboard and its spreadsheet export.
func (h GetDashboardQueryHandler) Snapshots(
	ctx context.Context,
	query GetDashboardQuery,
) ([]services.LifecycleSnapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reader := h.readers.Create()

	orders, err := reader.OrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	configs, err := reader.LifecycleConfigRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := reader.ExpenseRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	configsByOrder := make(map[string]lifecycle.Config, len(configs))
	for _, cfg := range configs {
		configsByOrder[cfg.OrderID().String()] = cfg
	}

	expensesByOrder := make(map[string][]*expense.Expense)
	for _, e := range expenses {
		key := e.OrderID().String()
		expensesByOrder[key] = append(expensesByOrder[key], e)
	}

	snapshots := make([]services.LifecycleSnapshot, 0, len(configs))
	for _, o := range orders {
		key := o.ID().String()
		cfg, ok := configsByOrder[key]
		if !ok {
			continue
		}

		ledger, err := expense.NewLedger(o.ID(), expensesByOrder[key])
		if err != nil {
			return nil, err
		}

		snap, err := h.builder.Build(o, cfg, ledger)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}

	return snapshots, nil
}
