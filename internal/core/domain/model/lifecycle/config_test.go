package lifecycle_test

import (
	"testing"
	"time"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMilestone(t *testing.T, name string, spec lifecycle.AmountSpec) lifecycle.Milestone {
	t.Helper()
	m, err := lifecycle.NewMilestone(kernel.NewUUID(), name, spec, "")
	require.NoError(t, err)
	return m
}

func validSettings(t *testing.T) lifecycle.Settings {
	t.Helper()
	delivery := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	return lifecycle.Settings{
		PurchaseBudget:  lifecycle.Percentage(dec("40")),
		ExecutionBudget: lifecycle.Percentage(dec("35")),
		TargetProfit:    lifecycle.FixedValue(dec("25000")),
		Milestones: []lifecycle.Milestone{
			mustMilestone(t, "Advance", lifecycle.Percentage(dec("30"))),
			mustMilestone(t, "On delivery", lifecycle.Percentage(dec("50"))),
			mustMilestone(t, "Retention", lifecycle.Percentage(dec("20"))),
		},
		CreditPeriodDays:      30,
		ProjectType:           lifecycle.ProjectTypeSupplyInstallation,
		EstimatedDeliveryDate: &delivery,
		Notes:                 "  site in Pune  ",
	}
}

func mustConfig(t *testing.T) lifecycle.Config {
	t.Helper()
	c, err := lifecycle.NewConfig(kernel.NewUUID(), validSettings(t))
	require.NoError(t, err)
	return c
}

func TestNewConfig(t *testing.T) {
	t.Run("should create config in new status", func(t *testing.T) {
		orderID := kernel.NewUUID()
		settings := validSettings(t)

		c, err := lifecycle.NewConfig(orderID, settings)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.OrderID().IsEqual(orderID))
		assert.Equal(t, lifecycle.New, c.Status())
		assert.Len(t, c.Milestones(), 3)
		assert.Equal(t, 30, c.CreditPeriodDays())
		assert.Equal(t, lifecycle.ProjectTypeSupplyInstallation, c.ProjectType())
		assert.Equal(t, "site in Pune", c.Notes())
		require.NotNil(t, c.EstimatedDeliveryDate())
		assert.True(t, settings.EstimatedDeliveryDate.Equal(*c.EstimatedDeliveryDate()))
		assert.True(t, c.PurchaseBudget().IsEqual(settings.PurchaseBudget))
	})

	t.Run("should accept zero milestones", func(t *testing.T) {
		settings := validSettings(t)
		settings.Milestones = nil

		c, err := lifecycle.NewConfig(kernel.NewUUID(), settings)

		require.NoError(t, err)
		assert.Empty(t, c.Milestones())
	})

	t.Run("should not require milestones to sum to the order value", func(t *testing.T) {
		settings := validSettings(t)
		settings.Milestones = []lifecycle.Milestone{
			mustMilestone(t, "Advance", lifecycle.Percentage(dec("90"))),
			mustMilestone(t, "Balance", lifecycle.Percentage(dec("90"))),
		}

		_, err := lifecycle.NewConfig(kernel.NewUUID(), settings)

		require.NoError(t, err)
	})

	t.Run("should reject missing budgets, negative credit period and bad project type", func(t *testing.T) {
		settings := validSettings(t)
		settings.PurchaseBudget = lifecycle.AmountSpec{}
		settings.CreditPeriodDays = -1
		settings.ProjectType = "consulting"

		_, err := lifecycle.NewConfig(kernel.NewUUID(), settings)

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "purchase budget")
		assert.Contains(t, err.Error(), "credit period days")
		assert.Contains(t, err.Error(), "project type")
	})

	t.Run("should reject duplicate milestone ids", func(t *testing.T) {
		settings := validSettings(t)
		settings.Milestones = append(settings.Milestones, settings.Milestones[0])

		_, err := lifecycle.NewConfig(kernel.NewUUID(), settings)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid order id", func(t *testing.T) {
		_, err := lifecycle.NewConfig(kernel.UUID{}, validSettings(t))

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value config is not constructed", func(t *testing.T) {
		var c lifecycle.Config

		assert.Equal(t, lifecycle.ErrConfigIsNotConstructed, c.Validate())
		_, err := c.Transition(lifecycle.Paid)
		require.ErrorIs(t, err, lifecycle.ErrConfigIsNotConstructed)
	})
}

func TestRestoreConfig(t *testing.T) {
	c, err := lifecycle.RestoreConfig(kernel.NewUUID(), validSettings(t), lifecycle.Invoiced)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.Invoiced, c.Status())

	_, err = lifecycle.RestoreConfig(kernel.NewUUID(), validSettings(t), lifecycle.Unknown)
	require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
}

func TestConfig_Configure(t *testing.T) {
	t.Run("should replace settings and keep order id and status", func(t *testing.T) {
		original := mustConfig(t)
		original, err := original.Transition(lifecycle.Execution)
		require.NoError(t, err)

		replacement := lifecycle.Settings{
			PurchaseBudget:  lifecycle.FixedValue(dec("10000")),
			ExecutionBudget: lifecycle.FixedValue(dec("5000")),
			TargetProfit:    lifecycle.Percentage(dec("15")),
			Notes:           "revised",
		}

		updated, err := original.Configure(replacement)

		require.NoError(t, err)
		assert.True(t, updated.OrderID().IsEqual(original.OrderID()))
		assert.Equal(t, lifecycle.Execution, updated.Status())
		assert.Empty(t, updated.Milestones())
		assert.Nil(t, updated.EstimatedDeliveryDate())
		assert.Equal(t, lifecycle.ProjectTypeNone, updated.ProjectType())
		assert.Equal(t, "revised", updated.Notes())

		assert.Len(t, original.Milestones(), 3, "receiver must stay untouched")
		assert.Equal(t, "site in Pune", original.Notes())
	})

	t.Run("should leave the receiver untouched on failure", func(t *testing.T) {
		original := mustConfig(t)
		bad := validSettings(t)
		bad.CreditPeriodDays = -5

		_, err := original.Configure(bad)

		require.Error(t, err)
		assert.Equal(t, 30, original.CreditPeriodDays())
	})

	t.Run("settings round trip through Settings()", func(t *testing.T) {
		original := mustConfig(t)

		again, err := original.Configure(original.Settings())

		require.NoError(t, err)
		assert.Equal(t, original.Milestones(), again.Milestones())
		assert.Equal(t, original.Notes(), again.Notes())
	})
}

func TestConfig_Transition(t *testing.T) {
	t.Run("should allow paid then procurement", func(t *testing.T) {
		c := mustConfig(t)

		paid, err := c.Transition(lifecycle.Paid)
		require.NoError(t, err)
		back, err := paid.Transition(lifecycle.Procurement)
		require.NoError(t, err)

		assert.Equal(t, lifecycle.Procurement, back.Status())
		assert.Equal(t, lifecycle.Paid, paid.Status())
		assert.Equal(t, lifecycle.New, c.Status())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		c := mustConfig(t)

		_, err := c.Transition(lifecycle.Status(42))

		require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
	})
}

func TestConfig_MilestoneEdits(t *testing.T) {
	t.Run("add appends with pending status", func(t *testing.T) {
		c := mustConfig(t)
		extra := mustMilestone(t, "Bonus", lifecycle.FixedValue(dec("1000")))

		next, err := c.AddMilestone(extra)

		require.NoError(t, err)
		ms := next.Milestones()
		require.Len(t, ms, 4)
		assert.True(t, ms[3].ID().IsEqual(extra.ID()))
		assert.Equal(t, lifecycle.MilestonePending, ms[3].Status())
		assert.Len(t, c.Milestones(), 3)
	})

	t.Run("add rejects an id already in use", func(t *testing.T) {
		c := mustConfig(t)

		_, err := c.AddMilestone(c.Milestones()[0])

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("update replaces one field and keeps the id", func(t *testing.T) {
		c := mustConfig(t)
		target := c.Milestones()[1]
		name := "Dispatch"

		next, err := c.UpdateMilestone(target.ID(), lifecycle.MilestonePatch{Name: &name})

		require.NoError(t, err)
		updated, err := next.Milestone(target.ID())
		require.NoError(t, err)
		assert.Equal(t, "Dispatch", updated.Name())
		assert.True(t, updated.Amount().IsEqual(target.Amount()))
		assert.Equal(t, "On delivery", c.Milestones()[1].Name())
	})

	t.Run("update can replace amount and due condition", func(t *testing.T) {
		c := mustConfig(t)
		target := c.Milestones()[0]
		amount := lifecycle.FixedValue(dec("12345"))
		due := "within 7 days of PO"

		next, err := c.UpdateMilestone(target.ID(), lifecycle.MilestonePatch{Amount: &amount, DueCondition: &due})

		require.NoError(t, err)
		updated, _ := next.Milestone(target.ID())
		assert.True(t, updated.Amount().IsEqual(amount))
		assert.Equal(t, due, updated.DueCondition())
	})

	t.Run("update rejects an empty patch and an empty name", func(t *testing.T) {
		c := mustConfig(t)
		id := c.Milestones()[0].ID()
		blank := "   "

		_, err := c.UpdateMilestone(id, lifecycle.MilestonePatch{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = c.UpdateMilestone(id, lifecycle.MilestonePatch{Name: &blank})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown ids fail with not found", func(t *testing.T) {
		c := mustConfig(t)
		unknown := kernel.NewUUID()
		name := "x"

		_, err := c.UpdateMilestone(unknown, lifecycle.MilestonePatch{Name: &name})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = c.RemoveMilestone(unknown)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = c.MarkMilestonePaid(unknown)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = c.Milestone(unknown)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("remove can delete every milestone", func(t *testing.T) {
		c := mustConfig(t)

		for _, m := range c.Milestones() {
			var err error
			c, err = c.RemoveMilestone(m.ID())
			require.NoError(t, err)
		}

		assert.Empty(t, c.Milestones())
	})

	t.Run("remove keeps the order of the rest", func(t *testing.T) {
		c := mustConfig(t)
		ms := c.Milestones()

		next, err := c.RemoveMilestone(ms[1].ID())

		require.NoError(t, err)
		rest := next.Milestones()
		require.Len(t, rest, 2)
		assert.True(t, rest[0].ID().IsEqual(ms[0].ID()))
		assert.True(t, rest[1].ID().IsEqual(ms[2].ID()))
		assert.Len(t, c.Milestones(), 3)
	})

	t.Run("mark paid touches only the target and is reversible", func(t *testing.T) {
		c := mustConfig(t)
		ms := c.Milestones()

		paid, err := c.MarkMilestonePaid(ms[1].ID())
		require.NoError(t, err)

		after := paid.Milestones()
		assert.Equal(t, lifecycle.MilestonePending, after[0].Status())
		assert.Equal(t, lifecycle.MilestonePaid, after[1].Status())
		assert.Equal(t, lifecycle.MilestonePending, after[2].Status())
		assert.Equal(t, lifecycle.MilestonePending, c.Milestones()[1].Status())

		pending, err := paid.MarkMilestonePending(ms[1].ID())
		require.NoError(t, err)
		assert.Equal(t, lifecycle.MilestonePending, pending.Milestones()[1].Status())
	})

	t.Run("set status rejects unknown status", func(t *testing.T) {
		c := mustConfig(t)

		_, err := c.SetMilestoneStatus(c.Milestones()[0].ID(), lifecycle.UnknownMilestoneStatus)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestConfig_MilestonesReturnsCopy(t *testing.T) {
	c := mustConfig(t)

	ms := c.Milestones()
	ms[0] = mustMilestone(t, "Tampered", lifecycle.FixedValue(dec("1")))

	assert.Equal(t, "Advance", c.Milestones()[0].Name())
}
