package commands

import (
	"context"

	"lifecycle/internal/core/domain/model/lifecycle"
)

// AddMilestoneCommandHandler appends milestones to lifecycle configurations.
type AddMilestoneCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

func NewAddMilestoneCommandHandler(uowFactory LifecycleUoWFactory) AddMilestoneCommandHandler {
	return AddMilestoneCommandHandler{uowFactory: uowFactory}
}

// Handle builds the milestone and appends it. A milestone id already used
// in the configuration is rejected.
func (h *AddMilestoneCommandHandler) Handle(ctx context.Context, cmd AddMilestoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	m, err := lifecycle.NewMilestone(cmd.MilestoneID(), cmd.Name(), cmd.Amount(), cmd.DueCondition())
	if err != nil {
		return err
	}

	return editLifecycle(ctx, h.uowFactory, cmd.OrderID(), func(cfg lifecycle.Config) (lifecycle.Config, error) {
		return cfg.AddMilestone(m)
	})
}
