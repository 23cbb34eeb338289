package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/errs"
	"lifecycle/internal/pkg/guard"
)

// ErrMilestoneIsNotConstructed is returned when a zero-value Milestone is used.
var ErrMilestoneIsNotConstructed = errors.New("Milestone must be created via NewMilestone or RestoreMilestone")

// ErrMilestonePatchIsEmpty is returned when a MilestonePatch changes nothing.
var ErrMilestonePatchIsEmpty = errs.NewValueIsRequiredError("at least one milestone field")

// MilestoneStatus is the settlement flag of a payment milestone.
type MilestoneStatus int

const (
	// UnknownMilestoneStatus catches uninitialised values.
	UnknownMilestoneStatus MilestoneStatus = iota

	// MilestonePending means the payment has not been received.
	MilestonePending

	// MilestonePaid means the payment has been received.
	MilestonePaid
)

// ParseMilestoneStatus maps "pending" or "paid" to a MilestoneStatus.
func ParseMilestoneStatus(label string) (MilestoneStatus, error) {
	switch label {
	case "pending":
		return MilestonePending, nil
	case "paid":
		return MilestonePaid, nil
	default:
		return UnknownMilestoneStatus, errs.NewValueIsInvalidErrorWithCause(
			"milestone status",
			fmt.Errorf("%q is not one of pending, paid", label),
		)
	}
}

// Validate reports whether the status is pending or paid.
func (s MilestoneStatus) Validate() error {
	if s != MilestonePending && s != MilestonePaid {
		return errs.NewValueIsInvalidErrorWithCause("milestone status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

func (s MilestoneStatus) String() string {
	switch s {
	case MilestonePending:
		return "pending"
	case MilestonePaid:
		return "paid"
	default:
		return "unknown"
	}
}

// Milestone is a scheduled partial payment of an order. Its id is stable
// across edits. The due condition is free text and is never parsed.
type Milestone struct { //nolint:recvcheck //using for validation
	id           kernel.UUID
	name         string
	amount       AmountSpec
	dueCondition string
	status       MilestoneStatus
	guard        guard.ConstructorGuard
}

// NewMilestone creates a pending milestone under a caller supplied id.
func NewMilestone(id kernel.UUID, name string, amount AmountSpec, dueCondition string) (Milestone, error) {
	return RestoreMilestone(id, name, amount, dueCondition, MilestonePending)
}

// RestoreMilestone rebuilds a milestone with an explicit status, for
// persistence and for full-replace configuration.
func RestoreMilestone(
	id kernel.UUID,
	name string,
	amount AmountSpec,
	dueCondition string,
	status MilestoneStatus,
) (Milestone, error) {
	m := Milestone{
		dueCondition: strings.TrimSpace(dueCondition),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setAmount(amount),
		m.setStatus(status),
	); err != nil {
		return Milestone{}, err
	}

	return m, nil
}

// Validate reports whether the milestone was built through a constructor.
func (m Milestone) Validate() error {
	return m.guard.Validate(ErrMilestoneIsNotConstructed)
}

func (m Milestone) ID() kernel.UUID {
	return m.id
}

func (m Milestone) Name() string {
	return m.name
}

func (m Milestone) Amount() AmountSpec {
	return m.amount
}

func (m Milestone) DueCondition() string {
	return m.dueCondition
}

func (m Milestone) Status() MilestoneStatus {
	return m.status
}

// IsPaid reports whether the milestone has been settled.
func (m Milestone) IsPaid() bool {
	return m.status == MilestonePaid
}

// ResolvedAmount resolves the milestone amount against orderValue.
func (m Milestone) ResolvedAmount(orderValue decimal.Decimal) decimal.Decimal {
	return m.amount.Resolve(orderValue)
}

// MilestonePatch names the milestone fields to replace. Nil fields are kept.
type MilestonePatch struct {
	Name         *string
	Amount       *AmountSpec
	DueCondition *string
}

// IsEmpty reports whether the patch changes nothing.
func (p MilestonePatch) IsEmpty() bool {
	return p.Name == nil && p.Amount == nil && p.DueCondition == nil
}

// apply returns a copy of m with the patch fields replaced.
func (m Milestone) apply(p MilestonePatch) (Milestone, error) {
	if p.IsEmpty() {
		return Milestone{}, ErrMilestonePatchIsEmpty
	}

	next := m
	if p.Name != nil {
		if err := next.setName(*p.Name); err != nil {
			return Milestone{}, err
		}
	}
	if p.Amount != nil {
		if err := next.setAmount(*p.Amount); err != nil {
			return Milestone{}, err
		}
	}
	if p.DueCondition != nil {
		next.dueCondition = strings.TrimSpace(*p.DueCondition)
	}
	return next, nil
}

func (m Milestone) withStatus(status MilestoneStatus) Milestone {
	m.status = status
	return m
}

func (m *Milestone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Milestone) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("milestone name")
	}
	m.name = name
	return nil
}

func (m *Milestone) setAmount(amount AmountSpec) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	m.amount = amount
	return nil
}

func (m *Milestone) setStatus(status MilestoneStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	m.status = status
	return nil
}
