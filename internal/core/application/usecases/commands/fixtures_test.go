package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/core/domain/model/order"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, "SO-1", "Acme", dec("100000"), kernel.DefaultCurrency(), "")
	require.NoError(t, err)
	return o
}

func testSettings(t *testing.T) lifecycle.Settings {
	t.Helper()
	advance, err := lifecycle.NewMilestone(kernel.NewUUID(), "Advance", lifecycle.Percentage(dec("30")), "on PO")
	require.NoError(t, err)
	balance, err := lifecycle.NewMilestone(kernel.NewUUID(), "Balance", lifecycle.Percentage(dec("70")), "")
	require.NoError(t, err)
	return lifecycle.Settings{
		PurchaseBudget:  lifecycle.Percentage(dec("40")),
		ExecutionBudget: lifecycle.Percentage(dec("35")),
		TargetProfit:    lifecycle.FixedValue(dec("25000")),
		Milestones:      []lifecycle.Milestone{advance, balance},
	}
}

func testConfig(t *testing.T, orderID kernel.UUID) lifecycle.Config {
	t.Helper()
	cfg, err := lifecycle.NewConfig(orderID, testSettings(t))
	require.NoError(t, err)
	return cfg
}
