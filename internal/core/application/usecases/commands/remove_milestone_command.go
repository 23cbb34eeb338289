package commands

import (
	"errors"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/pkg/guard"
)

var ErrRemoveMilestoneCommandIsNotConstructed = errors.New(
	"RemoveMilestoneCommand must be created via NewRemoveMilestoneCommand constructor",
)

// RemoveMilestoneCommand deletes one milestone. Removing the last milestone
// of an order is allowed and the expense ledger is not touched.
type RemoveMilestoneCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	milestoneID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveMilestoneCommand(orderID, milestoneID kernel.UUID) (RemoveMilestoneCommand, error) {
	if err := errors.Join(orderID.Validate(), milestoneID.Validate()); err != nil {
		return RemoveMilestoneCommand{}, err
	}

	return RemoveMilestoneCommand{
		orderID:     orderID,
		milestoneID: milestoneID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMilestoneCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMilestoneCommandIsNotConstructed)
}

func (c RemoveMilestoneCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RemoveMilestoneCommand) MilestoneID() kernel.UUID {
	return c.milestoneID
}
