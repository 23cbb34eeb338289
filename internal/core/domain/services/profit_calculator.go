package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/pkg/errs"
)

// MarginDecimalPlaces is the precision of FinancialSnapshot.ProfitMargin.
const MarginDecimalPlaces = 2

var hundred = decimal.NewFromInt(100)

// FinancialSnapshot holds every derived money figure of one order.
// Savings are target minus actual; a positive value means under budget.
type FinancialSnapshot struct {
	OrderValue       decimal.Decimal
	PurchaseTarget   decimal.Decimal
	ExecutionTarget  decimal.Decimal
	ProfitTarget     decimal.Decimal
	PurchaseActual   decimal.Decimal
	ExecutionActual  decimal.Decimal
	TotalCost        decimal.Decimal
	ActualProfit     decimal.Decimal
	ProfitMargin     decimal.Decimal
	PurchaseSavings  decimal.Decimal
	ExecutionSavings decimal.Decimal
}

// ProfitCalculator derives a FinancialSnapshot from a configuration, the
// order value and the order's expense ledger.
//
// Business rules:
//   - Targets are the budget specs resolved against the order value
//   - Actuals are ledger totals per bucket of the configured BucketMapping
//   - Total cost is purchase actual plus execution actual
//   - Profit margin is actual profit over order value in percent, rounded
//     to two places, and 0 when the order value is 0
//
// Example usage:
//
//	calc, _ := services.NewProfitCalculator(expense.BucketMappingV1)
//	snapshot, err := calc.Calculate(cfg, order.TotalAmount(), ledger)
type ProfitCalculator struct {
	mapping expense.BucketMapping
}

// NewProfitCalculator creates a calculator that buckets expenses with mapping.
func NewProfitCalculator(mapping expense.BucketMapping) (ProfitCalculator, error) {
	if mapping.Version() == "" {
		return ProfitCalculator{}, errs.NewVersionIsInvalidError("bucket mapping version")
	}
	return ProfitCalculator{mapping: mapping}, nil
}

// BucketMapping returns the mapping used to split actual spend.
func (p ProfitCalculator) BucketMapping() expense.BucketMapping {
	return p.mapping
}

// Calculate computes the snapshot. The ledger must belong to the order the
// configuration belongs to. Inputs are never modified.
func (p ProfitCalculator) Calculate(
	cfg lifecycle.Config,
	orderValue decimal.Decimal,
	ledger *expense.Ledger,
) (FinancialSnapshot, error) {
	if err := cfg.Validate(); err != nil {
		return FinancialSnapshot{}, err
	}
	if err := kernel.ValidateNonNegativeAmount("order value", orderValue); err != nil {
		return FinancialSnapshot{}, err
	}
	if ledger == nil {
		return FinancialSnapshot{}, errs.NewValueIsRequiredError("expense ledger")
	}
	if !ledger.OrderID().IsEqual(cfg.OrderID()) {
		return FinancialSnapshot{}, errs.NewValueIsInvalidErrorWithCause(
			"expense ledger",
			fmt.Errorf("ledger of order %s used for order %s", ledger.OrderID(), cfg.OrderID()),
		)
	}

	s := FinancialSnapshot{
		OrderValue:      orderValue,
		PurchaseTarget:  cfg.PurchaseBudget().Resolve(orderValue),
		ExecutionTarget: cfg.ExecutionBudget().Resolve(orderValue),
		ProfitTarget:    cfg.TargetProfit().Resolve(orderValue),
		PurchaseActual:  ledger.TotalForBucket(p.mapping, expense.PurchaseBucket),
		ExecutionActual: ledger.TotalForBucket(p.mapping, expense.ExecutionBucket),
	}

	s.TotalCost = s.PurchaseActual.Add(s.ExecutionActual)
	s.ActualProfit = orderValue.Sub(s.TotalCost)
	s.ProfitMargin = ProfitMargin(s.ActualProfit, orderValue)
	s.PurchaseSavings = s.PurchaseTarget.Sub(s.PurchaseActual)
	s.ExecutionSavings = s.ExecutionTarget.Sub(s.ExecutionActual)

	return s, nil
}

// ProfitMargin returns profit / orderValue * 100 rounded to two decimal
// places, or zero for a zero order value. A margin under half a hundredth of a
// percent rounds to zero even when the profit is not zero.
func ProfitMargin(profit, orderValue decimal.Decimal) decimal.Decimal {
	if orderValue.IsZero() {
		return decimal.Zero
	}
	return profit.Mul(hundred).Div(orderValue).Round(MarginDecimalPlaces)
}
