package queries_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/core/domain/model/order"
	"lifecycle/internal/core/domain/services"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testOrder(t *testing.T, orderNo, value string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), orderNo, "Acme", dec(value), kernel.DefaultCurrency(), "confirmed")
	require.NoError(t, err)
	return o
}

// testConfig budgets 40% purchase, 30% execution and 20% profit with one
// 30% advance milestone.
func testConfig(t *testing.T, orderID kernel.UUID) lifecycle.Config {
	t.Helper()
	advance, err := lifecycle.NewMilestone(kernel.NewUUID(), "Advance", lifecycle.Percentage(dec("30")), "on PO")
	require.NoError(t, err)
	cfg, err := lifecycle.NewConfig(orderID, lifecycle.Settings{
		PurchaseBudget:  lifecycle.Percentage(dec("40")),
		ExecutionBudget: lifecycle.Percentage(dec("30")),
		TargetProfit:    lifecycle.Percentage(dec("20")),
		Milestones:      []lifecycle.Milestone{advance},
	})
	require.NoError(t, err)
	return cfg
}

func testExpense(t *testing.T, orderID kernel.UUID, c expense.Category, amount string) *expense.Expense {
	t.Helper()
	e, err := expense.NewExpense(kernel.NewUUID(), orderID, expense.Details{
		Category:    c,
		Description: c.String(),
		Amount:      dec(amount),
		Date:        time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return e
}

func testBuilder(t *testing.T) services.SnapshotBuilder {
	t.Helper()
	calc, err := services.NewProfitCalculator(expense.BucketMappingV1)
	require.NoError(t, err)
	return services.NewSnapshotBuilder(calc)
}
