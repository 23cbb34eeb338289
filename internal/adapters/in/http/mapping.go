package http

import (
	"fmt"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"lifecycle/internal/core/application/usecases/queries"
	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/core/domain/services"
	"lifecycle/internal/generated/servers"
	"lifecycle/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Amounts are stored as numeric(20,4).
const (
	storedAmountScale   = 4
	storedAmountIntDigits = 16
)

var storedAmountLimit = decimal.New(1, storedAmountIntDigits)

// toStoredAmount rejects amounts the database would round or overflow.
func toStoredAmount(field string, d decimal.Decimal) (decimal.Decimal, error) {
	if !d.Equal(d.Truncate(storedAmountScale)) {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(field,
			fmt.Errorf("%s has more than %d decimal places", d.String(), storedAmountScale))
	}
	if d.Abs().GreaterThanOrEqual(storedAmountLimit) {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(field,
			fmt.Errorf("%s has more than %d integer digits", d.String(), storedAmountIntDigits))
	}
	return d, nil
}

func toID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toIDs(orderID, milestoneID openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	o, err := toID(orderID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	m, err := toID(milestoneID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("milestone id", err)
	}
	return o, m, nil
}

func toAmountSpec(in servers.AmountSpec) (lifecycle.AmountSpec, error) {
	value, err := toStoredAmount("amount value", in.Value.Decimal)
	if err != nil {
		return lifecycle.AmountSpec{}, err
	}
	return lifecycle.NewAmountSpec(string(in.Kind), value)
}

func toSettings(in servers.LifecycleSettings) (lifecycle.Settings, error) {
	var settings lifecycle.Settings
	var err error

	if settings.PurchaseBudget, err = toAmountSpec(in.PurchaseBudget); err != nil {
		return lifecycle.Settings{}, errs.NewValueIsInvalidErrorWithCause("purchase budget", err)
	}
	if settings.ExecutionBudget, err = toAmountSpec(in.ExecutionBudget); err != nil {
		return lifecycle.Settings{}, errs.NewValueIsInvalidErrorWithCause("execution budget", err)
	}
	if settings.TargetProfit, err = toAmountSpec(in.TargetProfit); err != nil {
		return lifecycle.Settings{}, errs.NewValueIsInvalidErrorWithCause("target profit", err)
	}
	if settings.ProjectType, err = lifecycle.ParseProjectType(deref(in.ProjectType)); err != nil {
		return lifecycle.Settings{}, err
	}

	if in.PaymentMilestones != nil {
		settings.Milestones = make([]lifecycle.Milestone, 0, len(*in.PaymentMilestones))
		for _, m := range *in.PaymentMilestones {
			milestone, milestoneErr := toMilestone(m)
			if milestoneErr != nil {
				return lifecycle.Settings{}, milestoneErr
			}
			settings.Milestones = append(settings.Milestones, milestone)
		}
	}

	if in.CreditPeriodDays != nil {
		settings.CreditPeriodDays = *in.CreditPeriodDays
	}
	if in.EstimatedDeliveryDate != nil {
		d := in.EstimatedDeliveryDate.Time
		settings.EstimatedDeliveryDate = &d
	}
	settings.Notes = deref(in.Notes)

	return settings, nil
}

// toMilestone keeps a client supplied id so that a full replace does not
// change the identity of existing milestones. New entries get a fresh id.
func toMilestone(in servers.MilestoneInput) (lifecycle.Milestone, error) {
	id := kernel.NewUUID()
	if in.Id != nil {
		parsed, err := toID(*in.Id)
		if err != nil {
			return lifecycle.Milestone{}, errs.NewValueIsInvalidErrorWithCause("milestone id", err)
		}
		id = parsed
	}

	amount, err := toAmountSpec(in.Amount)
	if err != nil {
		return lifecycle.Milestone{}, err
	}

	status := lifecycle.MilestonePending
	if in.Status != nil {
		if status, err = lifecycle.ParseMilestoneStatus(string(*in.Status)); err != nil {
			return lifecycle.Milestone{}, err
		}
	}

	return lifecycle.RestoreMilestone(id, in.Name, amount, deref(in.DueCondition), status)
}

func toMilestonePatch(in servers.MilestonePatch) (lifecycle.MilestonePatch, error) {
	patch := lifecycle.MilestonePatch{
		Name:         in.Name,
		DueCondition: in.DueCondition,
	}
	if in.Amount != nil {
		amount, err := toAmountSpec(*in.Amount)
		if err != nil {
			return lifecycle.MilestonePatch{}, err
		}
		patch.Amount = &amount
	}
	return patch, nil
}

func toExpenseDetails(in servers.NewExpense) (expense.Details, error) {
	category, err := expense.ParseCategory(in.Category)
	if err != nil {
		return expense.Details{}, err
	}
	amount, err := toStoredAmount("expense amount", in.Amount.Decimal)
	if err != nil {
		return expense.Details{}, err
	}
	return expense.Details{
		Category:    category,
		Description: in.Description,
		Amount:      amount,
		Date:        in.Date.Time,
		Vendor:      deref(in.Vendor),
		ReferenceNo: deref(in.ReferenceNo),
	}, nil
}

func toOrderResponse(o queries.GetOrderQueryResponse) servers.Order {
	return servers.Order{
		Id:           o.ID.Bytes(),
		OrderNo:      o.OrderNo,
		CustomerName: o.CustomerName,
		TotalAmount:  servers.NewMoney(o.TotalAmount),
		Currency:     o.Currency,
		SalesStatus:  o.SalesStatus,
	}
}

func toAmountSpecResponse(spec lifecycle.AmountSpec) servers.AmountSpec {
	return servers.AmountSpec{
		Kind:  servers.AmountSpecKind(spec.Kind().String()),
		Value: servers.NewMoney(spec.Value()),
	}
}

func toSnapshotResponse(s services.LifecycleSnapshot) servers.LifecycleSnapshot {
	cfg := s.Config
	fin := s.Financials

	milestones := make([]servers.Milestone, len(s.Schedule.Milestones))
	for i, m := range s.Schedule.Milestones {
		milestones[i] = servers.Milestone{
			Id:             m.ID.Bytes(),
			Name:           m.Name,
			Amount:         toAmountSpecResponse(m.Amount),
			ResolvedAmount: servers.NewMoney(m.ResolvedAmount),
			DueCondition:   m.DueCondition,
			Status:         servers.MilestoneStatus(m.Status.String()),
		}
	}

	var delivery *openapi_types.Date
	if d := cfg.EstimatedDeliveryDate(); d != nil {
		delivery = &openapi_types.Date{Time: *d}
	}

	return servers.LifecycleSnapshot{
		Order: servers.Order{
			Id:           s.Order.ID().Bytes(),
			OrderNo:      s.Order.OrderNo(),
			CustomerName: s.Order.CustomerName(),
			TotalAmount:  servers.NewMoney(s.Order.TotalAmount()),
			Currency:     s.Order.Currency().Code(),
			SalesStatus:  s.Order.SalesStatus(),
		},
		Status:                cfg.Status().String(),
		PurchaseBudget:        toAmountSpecResponse(cfg.PurchaseBudget()),
		ExecutionBudget:       toAmountSpecResponse(cfg.ExecutionBudget()),
		TargetProfit:          toAmountSpecResponse(cfg.TargetProfit()),
		CreditPeriodDays:      cfg.CreditPeriodDays(),
		ProjectType:           string(cfg.ProjectType()),
		EstimatedDeliveryDate: delivery,
		Notes:                 cfg.Notes(),
		Financials: servers.Financials{
			OrderValue:       servers.NewMoney(fin.OrderValue),
			PurchaseTarget:   servers.NewMoney(fin.PurchaseTarget),
			ExecutionTarget:  servers.NewMoney(fin.ExecutionTarget),
			ProfitTarget:     servers.NewMoney(fin.ProfitTarget),
			PurchaseActual:   servers.NewMoney(fin.PurchaseActual),
			ExecutionActual:  servers.NewMoney(fin.ExecutionActual),
			TotalCost:        servers.NewMoney(fin.TotalCost),
			ActualProfit:     servers.NewMoney(fin.ActualProfit),
			ProfitMargin:     servers.NewMoney(fin.ProfitMargin),
			PurchaseSavings:  servers.NewMoney(fin.PurchaseSavings),
			ExecutionSavings: servers.NewMoney(fin.ExecutionSavings),
		},
		PaymentMilestones:     milestones,
		ScheduledTotal:        servers.NewMoney(s.Schedule.ScheduledTotal),
		PaidMilestoneTotal:    servers.NewMoney(s.Schedule.PaidTotal),
		PendingMilestoneTotal: servers.NewMoney(s.Schedule.PendingTotal),
		UnscheduledAmount:     servers.NewMoney(s.Schedule.UnscheduledAmount),
		ExpenseCount:          s.ExpenseCount,
	}
}

func toStatusTotalsResponse(label string, t services.StatusTotals) servers.StatusTotals {
	return servers.StatusTotals{
		Status:           label,
		Orders:           t.Orders,
		OrderValue:       servers.NewMoney(t.OrderValue),
		TotalCost:        servers.NewMoney(t.TotalCost),
		ActualProfit:     servers.NewMoney(t.ActualProfit),
		PurchaseSavings:  servers.NewMoney(t.PurchaseSavings),
		ExecutionSavings: servers.NewMoney(t.ExecutionSavings),
	}
}

func toDashboardResponse(d services.Dashboard) servers.Dashboard {
	byStatus := make([]servers.StatusTotals, len(d.ByStatus))
	for i, t := range d.ByStatus {
		byStatus[i] = toStatusTotalsResponse(t.Status.String(), t)
	}
	return servers.Dashboard{
		ByStatus:     byStatus,
		Total:        toStatusTotalsResponse("total", d.Total),
		ProfitMargin: servers.NewMoney(d.ProfitMargin),
	}
}

func toExpenseResponse(e queries.ListExpensesQueryResponse) servers.Expense {
	return servers.Expense{
		Id:          e.ID.Bytes(),
		OrderId:     e.OrderID.Bytes(),
		Category:    e.Category,
		Description: e.Description,
		Amount:      servers.NewMoney(e.Amount),
		Date:        openapi_types.Date{Time: e.Date},
		Vendor:      optional(e.Vendor),
		ReferenceNo: optional(e.ReferenceNo),
		Approved:    e.Approved,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
