package commands

import (
	"errors"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/pkg/guard"
)

var ErrAddMilestoneCommandIsNotConstructed = errors.New(
	"AddMilestoneCommand must be created via NewAddMilestoneCommand constructor",
)

// AddMilestoneCommand appends a pending payment milestone to an order's
// configuration. The caller generates the milestone id so that it can be
// returned to the client without a read-back.
//
// Example:
//
//	milestoneID := kernel.NewUUID()
//	cmd, err := NewAddMilestoneCommand(orderID, milestoneID, "Advance",
//	    lifecycle.Percentage(decimal.NewFromInt(30)), "on PO")
type AddMilestoneCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	milestoneID  kernel.UUID
	name         string
	amount       lifecycle.AmountSpec
	dueCondition string

	guard guard.ConstructorGuard
}

// NewAddMilestoneCommand validates the identifiers and the amount spec.
// The name is validated by the milestone model.
func NewAddMilestoneCommand(
	orderID kernel.UUID,
	milestoneID kernel.UUID,
	name string,
	amount lifecycle.AmountSpec,
	dueCondition string,
) (AddMilestoneCommand, error) {
	cmd := AddMilestoneCommand{
		name:         name,
		dueCondition: dueCondition,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		milestoneID.Validate(),
		amount.Validate(),
	); err != nil {
		return AddMilestoneCommand{}, err
	}

	cmd.orderID = orderID
	cmd.milestoneID = milestoneID
	cmd.amount = amount
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMilestoneCommand) Validate() error {
	return c.guard.Validate(ErrAddMilestoneCommandIsNotConstructed)
}

func (c AddMilestoneCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddMilestoneCommand) MilestoneID() kernel.UUID {
	return c.milestoneID
}

func (c AddMilestoneCommand) Name() string {
	return c.name
}

func (c AddMilestoneCommand) Amount() lifecycle.AmountSpec {
	return c.amount
}

func (c AddMilestoneCommand) DueCondition() string {
	return c.dueCondition
}
