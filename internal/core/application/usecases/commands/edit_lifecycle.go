package commands

import (
	"context"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
)

// editLifecycle runs one read-modify-write of an order's configuration in a
// single transaction. An order that was never configured fails with
// errs.ObjectNotFoundError from the repository.
func editLifecycle(
	ctx context.Context,
	uowFactory LifecycleUoWFactory,
	orderID kernel.UUID,
	edit func(lifecycle.Config) (lifecycle.Config, error),
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LifecycleConfigRepository()
	current, err := repo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	updated, err := edit(current)
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
