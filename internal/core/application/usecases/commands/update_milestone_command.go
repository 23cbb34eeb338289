package commands

import (
	"errors"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/pkg/guard"
)

var ErrUpdateMilestoneCommandIsNotConstructed = errors.New(
	"UpdateMilestoneCommand must be created via NewUpdateMilestoneCommand constructor",
)

// UpdateMilestoneCommand replaces fields of one milestone. Fields left nil in
// the patch are kept.
//
// Example:
//
//	name := "Dispatch"
//	cmd, err := NewUpdateMilestoneCommand(orderID, milestoneID, lifecycle.MilestonePatch{Name: &name})
type UpdateMilestoneCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	milestoneID kernel.UUID
	patch       lifecycle.MilestonePatch

	guard guard.ConstructorGuard
}

// NewUpdateMilestoneCommand validates the identifiers and rejects an empty patch.
func NewUpdateMilestoneCommand(
	orderID kernel.UUID,
	milestoneID kernel.UUID,
	patch lifecycle.MilestonePatch,
) (UpdateMilestoneCommand, error) {
	var patchErr error
	if patch.IsEmpty() {
		patchErr = lifecycle.ErrMilestonePatchIsEmpty
	}

	if err := errors.Join(
		orderID.Validate(),
		milestoneID.Validate(),
		patchErr,
	); err != nil {
		return UpdateMilestoneCommand{}, err
	}

	return UpdateMilestoneCommand{
		orderID:     orderID,
		milestoneID: milestoneID,
		patch:       patch,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMilestoneCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMilestoneCommandIsNotConstructed)
}

func (c UpdateMilestoneCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateMilestoneCommand) MilestoneID() kernel.UUID {
	return c.milestoneID
}

func (c UpdateMilestoneCommand) Patch() lifecycle.MilestonePatch {
	return c.patch
}
