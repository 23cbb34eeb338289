package commands

import (
	"context"
	"errors"

	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/pkg/errs"
)

// ConfigureLifecycleCommandHandler creates or replaces the lifecycle
// configuration of an existing order.
type ConfigureLifecycleCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewConfigureLifecycleCommandHandler creates a handler for configure operations.
func NewConfigureLifecycleCommandHandler(uowFactory LifecycleUoWFactory) ConfigureLifecycleCommandHandler {
	return ConfigureLifecycleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, then adds a new configuration or updates the
// existing one. An unknown order fails with errs.ObjectNotFoundError.
func (h *ConfigureLifecycleCommandHandler) Handle(ctx context.Context, cmd ConfigureLifecycleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	repo := uow.LifecycleConfigRepository()
	current, err := repo.Get(ctx, cmd.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		created, createErr := lifecycle.NewConfig(cmd.OrderID(), cmd.Settings())
		if createErr != nil {
			return createErr
		}
		if err = repo.Add(ctx, created); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		updated, configureErr := current.Configure(cmd.Settings())
		if configureErr != nil {
			return configureErr
		}
		if err = repo.Update(ctx, updated); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
