package services

import (
	"github.com/shopspring/decimal"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
)

// ResolvedMilestone is a milestone together with its amount in currency.
type ResolvedMilestone struct {
	ID             kernel.UUID
	Name           string
	Amount         lifecycle.AmountSpec
	ResolvedAmount decimal.Decimal
	DueCondition   string
	Status         lifecycle.MilestoneStatus
}

// MilestoneSchedule is the payment plan of an order resolved against its
// order value. UnscheduledAmount is the order value minus ScheduledTotal; it
// is informational and may be negative when milestones over-schedule.
type MilestoneSchedule struct {
	Milestones        []ResolvedMilestone
	ScheduledTotal    decimal.Decimal
	PaidTotal         decimal.Decimal
	PendingTotal      decimal.Decimal
	UnscheduledAmount decimal.Decimal
}

// MilestoneScheduler resolves payment milestones. Milestones are kept in
// insertion order; due conditions are free text and are never sorted on.
type MilestoneScheduler struct{}

// NewMilestoneScheduler creates a new MilestoneScheduler instance.
func NewMilestoneScheduler() MilestoneScheduler {
	return MilestoneScheduler{}
}

// ResolvedAmount returns the amount of m for the given order value.
func (MilestoneScheduler) ResolvedAmount(m lifecycle.Milestone, orderValue decimal.Decimal) decimal.Decimal {
	return m.ResolvedAmount(orderValue)
}

// Schedule resolves every milestone of cfg and sums them by status.
func (s MilestoneScheduler) Schedule(cfg lifecycle.Config, orderValue decimal.Decimal) (MilestoneSchedule, error) {
	if err := cfg.Validate(); err != nil {
		return MilestoneSchedule{}, err
	}
	if err := kernel.ValidateNonNegativeAmount("order value", orderValue); err != nil {
		return MilestoneSchedule{}, err
	}

	milestones := cfg.Milestones()
	schedule := MilestoneSchedule{
		Milestones:     make([]ResolvedMilestone, 0, len(milestones)),
		ScheduledTotal: decimal.Zero,
		PaidTotal:      decimal.Zero,
		PendingTotal:   decimal.Zero,
	}

	for _, m := range milestones {
		amount := s.ResolvedAmount(m, orderValue)
		schedule.Milestones = append(schedule.Milestones, ResolvedMilestone{
			ID:             m.ID(),
			Name:           m.Name(),
			Amount:         m.Amount(),
			ResolvedAmount: amount,
			DueCondition:   m.DueCondition(),
			Status:         m.Status(),
		})

		schedule.ScheduledTotal = schedule.ScheduledTotal.Add(amount)
		if m.IsPaid() {
			schedule.PaidTotal = schedule.PaidTotal.Add(amount)
		} else {
			schedule.PendingTotal = schedule.PendingTotal.Add(amount)
		}
	}

	schedule.UnscheduledAmount = orderValue.Sub(schedule.ScheduledTotal)
	return schedule, nil
}
