package services_test

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

func newOrder(t *testing.T, value string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "SO-1", "Acme", dec(value), kernel.DefaultCurrency(), "")
	require.NoError(t, err)
	return o
}

func newConfig(t *testing.T, orderID kernel.UUID, milestones ...lifecycle.Milestone) lifecycle.Config {
	t.Helper()
	c, err := lifecycle.NewConfig(orderID, lifecycle.Settings{
		PurchaseBudget:  lifecycle.Percentage(dec("40")),
		ExecutionBudget: lifecycle.Percentage(dec("30")),
		TargetProfit:    lifecycle.Percentage(dec("20")),
		Milestones:      milestones,
	})
	require.NoError(t, err)
	return c
}

func newMilestone(t *testing.T, name string, spec lifecycle.AmountSpec) lifecycle.Milestone {
	t.Helper()
	m, err := lifecycle.NewMilestone(kernel.NewUUID(), name, spec, "")
	require.NoError(t, err)
	return m
}

func newExpense(t *testing.T, orderID kernel.UUID, c expense.Category, amount string) *expense.Expense {
	t.Helper()
	e, err := expense.NewExpense(kernel.NewUUID(), orderID, expense.Details{
		Category:    c,
		Description: c.String(),
		Amount:      dec(amount),
		Date:        time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return e
}

func newLedger(t *testing.T, orderID kernel.UUID, expenses ...*expense.Expense) *expense.Ledger {
	t.Helper()
	l, err := expense.NewLedger(orderID, expenses)
	require.NoError(t, err)
	return l
}

func newCalculator(t *testing.T) services.ProfitCalculator {
	t.Helper()
	c, err := services.NewProfitCalculator(expense.BucketMappingV1)
	require.NoError(t, err)
	return c
}
