package services

import (
	"fmt"

	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/core/domain/model/order"
	"lifecycle/internal/pkg/errs"
)

// LifecycleSnapshot is the full derived view of one order: the order, its
// configuration, the money figures and the resolved payment plan.
type LifecycleSnapshot struct {
	Order        *order.Order
	Config       lifecycle.Config
	Financials   FinancialSnapshot
	Schedule     MilestoneSchedule
	ExpenseCount int
}

// SnapshotBuilder composes ProfitCalculator and MilestoneScheduler.
type SnapshotBuilder struct {
	calculator ProfitCalculator
	scheduler  MilestoneScheduler
}

// NewSnapshotBuilder creates a builder around calculator.
func NewSnapshotBuilder(calculator ProfitCalculator) SnapshotBuilder {
	return SnapshotBuilder{calculator: calculator, scheduler: NewMilestoneScheduler()}
}

// Build recomputes the snapshot of o from cfg and ledger.
func (b SnapshotBuilder) Build(o *order.Order, cfg lifecycle.Config, ledger *expense.Ledger) (LifecycleSnapshot, error) {
	if err := o.Validate(); err != nil {
		return LifecycleSnapshot{}, err
	}
	if err := cfg.Validate(); err != nil {
		return LifecycleSnapshot{}, err
	}
	if !cfg.OrderID().IsEqual(o.ID()) {
		return LifecycleSnapshot{}, errs.NewValueIsInvalidErrorWithCause(
			"lifecycle config",
			fmt.Errorf("config of order %s used for order %s", cfg.OrderID(), o.ID()),
		)
	}

	financials, err := b.calculator.Calculate(cfg, o.TotalAmount(), ledger)
	if err != nil {
		return LifecycleSnapshot{}, err
	}

	schedule, err := b.scheduler.Schedule(cfg, o.TotalAmount())
	if err != nil {
		return LifecycleSnapshot{}, err
	}

	return LifecycleSnapshot{
		Order:        o,
		Config:       cfg,
		Financials:   financials,
		Schedule:     schedule,
		ExpenseCount: ledger.Len(),
	}, nil
}
