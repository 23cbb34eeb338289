package commands_test

import (
	"errors"
	"testing"

	"lifecycle/internal/core/application/usecases/commands"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expectEdit wires a successful read-modify-write whose stored config must satisfy check.
func expectEdit(t *testing.T, m lifecycleMocks, current lifecycle.Config, check func(lifecycle.Config) bool) {
	t.Helper()
	ctx := t.Context()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.configs.On("Get", ctx, current.OrderID()).Return(current, nil).Once(),
		m.configs.On("Update", ctx, mock.MatchedBy(check)).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

// expectFailedEdit wires a read whose edit fails before anything is stored.
func expectFailedEdit(t *testing.T, m lifecycleMocks, current lifecycle.Config) {
	t.Helper()
	ctx := t.Context()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.configs.On("Get", ctx, current.OrderID()).Return(current, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func TestAddMilestoneCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("constructor validates ids and amount", func(t *testing.T) {
		_, err := commands.NewAddMilestoneCommand(kernel.UUID{}, kernel.UUID{}, "x", lifecycle.AmountSpec{}, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, lifecycle.ErrAmountSpecIsNotConstructed)
	})

	t.Run("should append a pending milestone", func(t *testing.T) {
		current := testConfig(t, orderID)
		milestoneID := kernel.NewUUID()
		cmd, err := commands.NewAddMilestoneCommand(orderID, milestoneID, "Retention",
			lifecycle.FixedValue(dec("5000")), "after 12 months")
		require.NoError(t, err)

		m := newLifecycleMocks()
		expectEdit(t, m, current, func(cfg lifecycle.Config) bool {
			ms := cfg.Milestones()
			last := ms[len(ms)-1]
			return len(ms) == 3 && last.ID().IsEqual(milestoneID) && last.Status() == lifecycle.MilestonePending
		})

		h := commands.NewAddMilestoneCommandHandler(m.factory)
		require.NoError(t, h.Handle(t.Context(), cmd))
		m.assertExpectations(t)
	})

	t.Run("should reject an id already in use", func(t *testing.T) {
		current := testConfig(t, orderID)
		cmd, _ := commands.NewAddMilestoneCommand(orderID, current.Milestones()[0].ID(), "Again",
			lifecycle.FixedValue(dec("1")), "")

		m := newLifecycleMocks()
		expectFailedEdit(t, m, current)

		h := commands.NewAddMilestoneCommandHandler(m.factory)
		err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		m.assertExpectations(t)
	})

	t.Run("should reject a blank name before opening a transaction", func(t *testing.T) {
		cmd, _ := commands.NewAddMilestoneCommand(orderID, kernel.NewUUID(), "  ", lifecycle.FixedValue(dec("1")), "")
		factory := new(MockLifecycleUoWFactory)

		h := commands.NewAddMilestoneCommandHandler(factory)
		err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestUpdateMilestoneCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("constructor rejects an empty patch", func(t *testing.T) {
		_, err := commands.NewUpdateMilestoneCommand(orderID, kernel.NewUUID(), lifecycle.MilestonePatch{})

		require.ErrorIs(t, err, lifecycle.ErrMilestonePatchIsEmpty)
	})

	t.Run("should replace the amount of one milestone", func(t *testing.T) {
		current := testConfig(t, orderID)
		target := current.Milestones()[1]
		amount := lifecycle.FixedValue(dec("70000"))
		cmd, err := commands.NewUpdateMilestoneCommand(orderID, target.ID(), lifecycle.MilestonePatch{Amount: &amount})
		require.NoError(t, err)

		m := newLifecycleMocks()
		expectEdit(t, m, current, func(cfg lifecycle.Config) bool {
			updated, getErr := cfg.Milestone(target.ID())
			return getErr == nil && updated.Amount().IsEqual(amount) && updated.Name() == target.Name()
		})

		h := commands.NewUpdateMilestoneCommandHandler(m.factory)
		require.NoError(t, h.Handle(t.Context(), cmd))
		m.assertExpectations(t)
	})

	t.Run("should fail with not found for an unknown milestone", func(t *testing.T) {
		current := testConfig(t, orderID)
		name := "Ghost"
		cmd, _ := commands.NewUpdateMilestoneCommand(orderID, kernel.NewUUID(), lifecycle.MilestonePatch{Name: &name})

		m := newLifecycleMocks()
		expectFailedEdit(t, m, current)

		h := commands.NewUpdateMilestoneCommandHandler(m.factory)
		err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		m.assertExpectations(t)
	})
}

func TestRemoveMilestoneCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should remove the milestone", func(t *testing.T) {
		current := testConfig(t, orderID)
		removed := current.Milestones()[0]
		cmd, err := commands.NewRemoveMilestoneCommand(orderID, removed.ID())
		require.NoError(t, err)
		assert.Equal(t, removed.ID(), cmd.MilestoneID())

		m := newLifecycleMocks()
		expectEdit(t, m, current, func(cfg lifecycle.Config) bool {
			_, getErr := cfg.Milestone(removed.ID())
			return len(cfg.Milestones()) == 1 && errors.Is(getErr, errs.ErrObjectNotFound)
		})

		h := commands.NewRemoveMilestoneCommandHandler(m.factory)
		require.NoError(t, h.Handle(t.Context(), cmd))
		m.assertExpectations(t)
	})

	t.Run("should fail with not found for an unknown milestone", func(t *testing.T) {
		current := testConfig(t, orderID)
		cmd, _ := commands.NewRemoveMilestoneCommand(orderID, kernel.NewUUID())

		m := newLifecycleMocks()
		expectFailedEdit(t, m, current)

		h := commands.NewRemoveMilestoneCommandHandler(m.factory)
		require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrObjectNotFound)
		m.assertExpectations(t)
	})
}

func TestSetMilestoneStatusCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("constructor rejects unknown status", func(t *testing.T) {
		_, err := commands.NewSetMilestoneStatusCommand(orderID, kernel.NewUUID(), lifecycle.UnknownMilestoneStatus)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should mark only the target milestone paid", func(t *testing.T) {
		current := testConfig(t, orderID)
		target := current.Milestones()[1]
		cmd, err := commands.NewSetMilestoneStatusCommand(orderID, target.ID(), lifecycle.MilestonePaid)
		require.NoError(t, err)

		m := newLifecycleMocks()
		expectEdit(t, m, current, func(cfg lifecycle.Config) bool {
			ms := cfg.Milestones()
			return ms[0].Status() == lifecycle.MilestonePending && ms[1].Status() == lifecycle.MilestonePaid
		})

		h := commands.NewSetMilestoneStatusCommandHandler(m.factory)
		require.NoError(t, h.Handle(t.Context(), cmd))
		m.assertExpectations(t)
	})
}

func TestEditLifecycle_UpdateError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	current := testConfig(t, orderID)
	cmd, _ := commands.NewTransitionStatusCommand(orderID, lifecycle.Closed)
	boom := errors.New("write failed")

	m := newLifecycleMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.configs.On("Get", ctx, orderID).Return(current, nil).Once(),
		m.configs.On("Update", ctx, mock.Anything).Return(boom).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewTransitionStatusCommandHandler(m.factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, boom)
	m.assertExpectations(t)
	m.uow.AssertNotCalled(t, "Commit", ctx)
}
