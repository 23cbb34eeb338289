package services_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/core/domain/services"
	"lifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfitCalculator_Calculate(t *testing.T) {
	calc := newCalculator(t)

	t.Run("purchase target, actual and savings for a 40 percent budget", func(t *testing.T) {
		// Given
		orderID := kernel.NewUUID()
		cfg := newConfig(t, orderID)
		ledger := newLedger(t, orderID, newExpense(t, orderID, expense.MaterialPurchase, "35000"))

		// When
		s, err := calc.Calculate(cfg, dec("100000"), ledger)

		// Then
		require.NoError(t, err)
		assert.True(t, dec("40000").Equal(s.PurchaseTarget))
		assert.True(t, dec("35000").Equal(s.PurchaseActual))
		assert.True(t, dec("5000").Equal(s.PurchaseSavings))
		assert.True(t, dec("30000").Equal(s.ExecutionTarget))
		assert.True(t, decimal.Zero.Equal(s.ExecutionActual))
		assert.True(t, dec("30000").Equal(s.ExecutionSavings))
		assert.True(t, dec("20000").Equal(s.ProfitTarget))
		assert.True(t, dec("35000").Equal(s.TotalCost))
		assert.True(t, dec("65000").Equal(s.ActualProfit))
		assert.True(t, dec("65").Equal(s.ProfitMargin))
	})

	t.Run("zero order value resolves percentages to zero and margin to zero", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cfg := newConfig(t, orderID)
		ledger := newLedger(t, orderID, newExpense(t, orderID, expense.Labor, "1200"))

		s, err := calc.Calculate(cfg, decimal.Zero, ledger)

		require.NoError(t, err)
		assert.True(t, s.PurchaseTarget.IsZero())
		assert.True(t, s.ExecutionTarget.IsZero())
		assert.True(t, s.ProfitTarget.IsZero())
		assert.True(t, s.ProfitMargin.IsZero())
		assert.True(t, dec("-1200").Equal(s.ActualProfit))
	})

	t.Run("fixed value budgets ignore the order value", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cfg, err := lifecycle.NewConfig(orderID, lifecycle.Settings{
			PurchaseBudget:  lifecycle.FixedValue(dec("12000")),
			ExecutionBudget: lifecycle.FixedValue(dec("8000")),
			TargetProfit:    lifecycle.FixedValue(dec("5000")),
		})
		require.NoError(t, err)

		s, err := calc.Calculate(cfg, dec("30000"), newLedger(t, orderID))

		require.NoError(t, err)
		assert.True(t, dec("12000").Equal(s.PurchaseTarget))
		assert.True(t, dec("8000").Equal(s.ExecutionTarget))
		assert.True(t, dec("5000").Equal(s.ProfitTarget))
	})

	t.Run("margin is rounded to two places", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cfg := newConfig(t, orderID)
		ledger := newLedger(t, orderID, newExpense(t, orderID, expense.Transport, "1"))

		s, err := calc.Calculate(cfg, dec("3"), ledger)

		require.NoError(t, err)
		assert.Equal(t, "66.67", s.ProfitMargin.StringFixed(2))
	})

	t.Run("equipment rental is charged to purchase, misc to execution", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cfg := newConfig(t, orderID)
		ledger := newLedger(t, orderID,
			newExpense(t, orderID, expense.EquipmentRental, "100"),
			newExpense(t, orderID, expense.Misc, "50"),
			newExpense(t, orderID, expense.Subcontractor, "25"),
		)

		s, err := calc.Calculate(cfg, dec("1000"), ledger)

		require.NoError(t, err)
		assert.True(t, dec("100").Equal(s.PurchaseActual))
		assert.True(t, dec("75").Equal(s.ExecutionActual))
		assert.True(t, ledger.Total().Equal(s.TotalCost))
	})

	t.Run("should reject negative order value, foreign ledger and missing ledger", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cfg := newConfig(t, orderID)

		_, err := calc.Calculate(cfg, dec("-1"), newLedger(t, orderID))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = calc.Calculate(cfg, dec("10"), newLedger(t, kernel.NewUUID()))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = calc.Calculate(cfg, dec("10"), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = calc.Calculate(lifecycle.Config{}, dec("10"), newLedger(t, orderID))
		require.ErrorIs(t, err, lifecycle.ErrConfigIsNotConstructed)
	})
}

func TestProfitCalculator_MarginSign(t *testing.T) {
	calc := newCalculator(t)
	orderValue := dec("10000")

	for _, cost := range []string{"0", "2500", "9990", "10000", "10010", "25000"} {
		t.Run(cost, func(t *testing.T) {
			orderID := kernel.NewUUID()
			cfg := newConfig(t, orderID)
			ledger := newLedger(t, orderID, newExpense(t, orderID, expense.SiteExpenses, cost))

			s, err := calc.Calculate(cfg, orderValue, ledger)

			require.NoError(t, err)
			assert.Equal(t, s.TotalCost.GreaterThan(orderValue), s.ActualProfit.IsNegative())
			assert.Equal(t, s.ActualProfit.Sign(), s.ProfitMargin.Sign())
		})
	}
}

func TestProfitMargin_RoundsTinyMarginsToZero(t *testing.T) {
	tests := []struct {
		name       string
		profit     string
		orderValue string
		want       string
	}{
		{"loss below half a basis point", "-1", "1000000", "0"},
		{"profit below half a basis point", "1", "1000000", "0"},
		{"loss at half a basis point", "-50", "1000000", "-0.01"},
		{"profit at half a basis point", "50", "1000000", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ProfitMargin(dec(tt.profit), dec(tt.orderValue))

			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestProfitCalculator_IsRederivable(t *testing.T) {
	calc := newCalculator(t)
	orderID := kernel.NewUUID()
	expenses := []*expense.Expense{
		newExpense(t, orderID, expense.MaterialPurchase, "1000"),
		newExpense(t, orderID, expense.Labor, "300.50"),
		newExpense(t, orderID, expense.EquipmentRental, "99.50"),
	}

	cfg := newConfig(t, orderID, newMilestone(t, "Advance", lifecycle.Percentage(dec("50"))))
	cfg, err := cfg.Transition(lifecycle.Execution)
	require.NoError(t, err)
	cfg, err = cfg.Configure(lifecycle.Settings{
		PurchaseBudget:  lifecycle.FixedValue(dec("2000")),
		ExecutionBudget: lifecycle.Percentage(dec("10")),
		TargetProfit:    lifecycle.Percentage(dec("25")),
	})
	require.NoError(t, err)

	first, err := calc.Calculate(cfg, dec("5000"), newLedger(t, orderID, expenses...))
	require.NoError(t, err)

	replayed, err := lifecycle.NewConfig(orderID, cfg.Settings())
	require.NoError(t, err)
	replayed, err = replayed.Transition(cfg.Status())
	require.NoError(t, err)
	second, err := calc.Calculate(replayed, dec("5000"), newLedger(t, orderID, expenses...))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, dec("199.50").Equal(first.ExecutionSavings))
}

func TestNewProfitCalculator(t *testing.T) {
	_, err := services.NewProfitCalculator(expense.BucketMapping{})
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)

	calc, err := services.NewProfitCalculator(expense.BucketMappingV1)
	require.NoError(t, err)
	assert.Equal(t, "v1", calc.BucketMapping().Version())
}

func TestProfitMargin(t *testing.T) {
	assert.True(t, services.ProfitMargin(dec("5"), decimal.Zero).IsZero())
	assert.Equal(t, "-50.00", services.ProfitMargin(dec("-50"), dec("100")).StringFixed(2))
	assert.Equal(t, "33.33", services.ProfitMargin(dec("1"), dec("3")).StringFixed(2))
}
