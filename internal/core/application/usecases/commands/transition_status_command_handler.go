package commands

import (
	"context"

	"lifecycle/internal/core/domain/model/lifecycle"
)

// TransitionStatusCommandHandler changes the lifecycle status of an order.
type TransitionStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

func NewTransitionStatusCommandHandler(uowFactory LifecycleUoWFactory) TransitionStatusCommandHandler {
	return TransitionStatusCommandHandler{uowFactory: uowFactory}
}

// Handle loads the configuration, applies the transition and stores it.
func (h *TransitionStatusCommandHandler) Handle(ctx context.Context, cmd TransitionStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return editLifecycle(ctx, h.uowFactory, cmd.OrderID(), func(cfg lifecycle.Config) (lifecycle.Config, error) {
		return cfg.Transition(cmd.Target())
	})
}
