package commands

import (
	"context"

	"lifecycle/internal/core/domain/model/lifecycle"
)

// UpdateMilestoneCommandHandler edits milestones in place. An unknown
// milestone id fails with errs.ObjectNotFoundError.
type UpdateMilestoneCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

func NewUpdateMilestoneCommandHandler(uowFactory LifecycleUoWFactory) UpdateMilestoneCommandHandler {
	return UpdateMilestoneCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateMilestoneCommandHandler) Handle(ctx context.Context, cmd UpdateMilestoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return editLifecycle(ctx, h.uowFactory, cmd.OrderID(), func(cfg lifecycle.Config) (lifecycle.Config, error) {
		return cfg.UpdateMilestone(cmd.MilestoneID(), cmd.Patch())
	})
}
