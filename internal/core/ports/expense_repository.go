package ports

import (
	"context"

	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/model/kernel"
)

// ExpenseRepository defines the persistence contract for the expense ledger.
// It is append-only: there is no update or delete.
type ExpenseRepository interface {
	// Add appends an expense.
	Add(ctx context.Context, e *expense.Expense) error

	// GetByOrder retrieves the expenses of one order in the order they were
	// recorded. An order without expenses yields an empty slice.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*expense.Expense, error)

	// GetAll retrieves the expenses of every order in the order they were recorded.
	GetAll(ctx context.Context) ([]*expense.Expense, error)
}
