package commands

import (
	"context"

	"lifecycle/internal/core/domain/model/lifecycle"
)

// RemoveMilestoneCommandHandler removes milestones from configurations.
type RemoveMilestoneCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

func NewRemoveMilestoneCommandHandler(uowFactory LifecycleUoWFactory) RemoveMilestoneCommandHandler {
	return RemoveMilestoneCommandHandler{uowFactory: uowFactory}
}

func (h *RemoveMilestoneCommandHandler) Handle(ctx context.Context, cmd RemoveMilestoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return editLifecycle(ctx, h.uowFactory, cmd.OrderID(), func(cfg lifecycle.Config) (lifecycle.Config, error) {
		return cfg.RemoveMilestone(cmd.MilestoneID())
	})
}
