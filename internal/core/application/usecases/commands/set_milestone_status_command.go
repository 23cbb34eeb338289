package commands

import (
	"errors"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/pkg/guard"
)

var ErrSetMilestoneStatusCommandIsNotConstructed = errors.New(
	"SetMilestoneStatusCommand must be created via NewSetMilestoneStatusCommand constructor",
)

// SetMilestoneStatusCommand marks a milestone paid or pending. The change is
// reversible and no history is kept.
//
// Example:
//
//	cmd, err := NewSetMilestoneStatusCommand(orderID, milestoneID, lifecycle.MilestonePaid)
type SetMilestoneStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	milestoneID kernel.UUID
	status      lifecycle.MilestoneStatus

	guard guard.ConstructorGuard
}

func NewSetMilestoneStatusCommand(
	orderID kernel.UUID,
	milestoneID kernel.UUID,
	status lifecycle.MilestoneStatus,
) (SetMilestoneStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		milestoneID.Validate(),
		status.Validate(),
	); err != nil {
		return SetMilestoneStatusCommand{}, err
	}

	return SetMilestoneStatusCommand{
		orderID:     orderID,
		milestoneID: milestoneID,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetMilestoneStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetMilestoneStatusCommandIsNotConstructed)
}

func (c SetMilestoneStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetMilestoneStatusCommand) MilestoneID() kernel.UUID {
	return c.milestoneID
}

func (c SetMilestoneStatusCommand) Status() lifecycle.MilestoneStatus {
	return c.status
}
