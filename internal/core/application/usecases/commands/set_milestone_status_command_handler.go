package commands

import (
	"context"

	"lifecycle/internal/core/domain/model/lifecycle"
)

// SetMilestoneStatusCommandHandler flips the settlement flag of milestones.
type SetMilestoneStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

func NewSetMilestoneStatusCommandHandler(uowFactory LifecycleUoWFactory) SetMilestoneStatusCommandHandler {
	return SetMilestoneStatusCommandHandler{uowFactory: uowFactory}
}

func (h *SetMilestoneStatusCommandHandler) Handle(ctx context.Context, cmd SetMilestoneStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return editLifecycle(ctx, h.uowFactory, cmd.OrderID(), func(cfg lifecycle.Config) (lifecycle.Config, error) {
		return cfg.SetMilestoneStatus(cmd.MilestoneID(), cmd.Status())
	})
}
