package services

import (
	"github.com/shopspring/decimal"

	"lifecycle/internal/core/domain/model/lifecycle"
)

// StatusTotals sums the snapshots of the orders in one lifecycle status.
type StatusTotals struct {
	Status           lifecycle.Status
	Orders           int
	OrderValue       decimal.Decimal
	TotalCost        decimal.Decimal
	ActualProfit     decimal.Decimal
	PurchaseSavings  decimal.Decimal
	ExecutionSavings decimal.Decimal
}

// Dashboard is the portfolio view across orders. ByStatus lists all seven
// statuses in lifecycle order, including empty ones. Amounts of different
// currencies are summed as is.
type Dashboard struct {
	ByStatus []StatusTotals
	Total    StatusTotals
	// ProfitMargin is Total.ActualProfit over Total.OrderValue in percent.
	ProfitMargin decimal.Decimal
}

func newStatusTotals(status lifecycle.Status) StatusTotals {
	return StatusTotals{
		Status:           status,
		OrderValue:       decimal.Zero,
		TotalCost:        decimal.Zero,
		ActualProfit:     decimal.Zero,
		PurchaseSavings:  decimal.Zero,
		ExecutionSavings: decimal.Zero,
	}
}

func (t StatusTotals) add(f FinancialSnapshot) StatusTotals {
	t.Orders++
	t.OrderValue = t.OrderValue.Add(f.OrderValue)
	t.TotalCost = t.TotalCost.Add(f.TotalCost)
	t.ActualProfit = t.ActualProfit.Add(f.ActualProfit)
	t.PurchaseSavings = t.PurchaseSavings.Add(f.PurchaseSavings)
	t.ExecutionSavings = t.ExecutionSavings.Add(f.ExecutionSavings)
	return t
}

// FoldDashboard aggregates snapshots by lifecycle status. It is a pure fold:
// the result depends only on the snapshots, not on their order.
func FoldDashboard(snapshots []LifecycleSnapshot) Dashboard {
	statuses := lifecycle.AllStatuses()
	index := make(map[lifecycle.Status]int, len(statuses))
	byStatus := make([]StatusTotals, len(statuses))
	for i, s := range statuses {
		index[s] = i
		byStatus[i] = newStatusTotals(s)
	}

	total := newStatusTotals(lifecycle.Unknown)
	for _, snap := range snapshots {
		i, ok := index[snap.Config.Status()]
		if !ok {
			continue
		}
		byStatus[i] = byStatus[i].add(snap.Financials)
		total = total.add(snap.Financials)
	}

	return Dashboard{
		ByStatus:     byStatus,
		Total:        total,
		ProfitMargin: ProfitMargin(total.ActualProfit, total.OrderValue),
	}
}
