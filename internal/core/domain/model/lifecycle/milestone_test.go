package lifecycle_test

import (
	"testing"

	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMilestone(t *testing.T) {
	t.Run("should create a pending milestone", func(t *testing.T) {
		id := kernel.NewUUID()

		m, err := lifecycle.NewMilestone(id, " Advance ", lifecycle.Percentage(dec("30")), " on PO ")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(id))
		assert.Equal(t, "Advance", m.Name())
		assert.Equal(t, "on PO", m.DueCondition())
		assert.Equal(t, lifecycle.MilestonePending, m.Status())
		assert.False(t, m.IsPaid())
	})

	t.Run("should collect every validation failure", func(t *testing.T) {
		var id kernel.UUID
		var spec lifecycle.AmountSpec

		_, err := lifecycle.NewMilestone(id, "", spec, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "milestone name")
		assert.Contains(t, err.Error(), "amount spec must be created")
	})

	t.Run("should allow an empty due condition", func(t *testing.T) {
		m, err := lifecycle.NewMilestone(kernel.NewUUID(), "Retention", lifecycle.FixedValue(dec("5000")), "")

		require.NoError(t, err)
		assert.Empty(t, m.DueCondition())
	})
}

func TestRestoreMilestone(t *testing.T) {
	t.Run("should keep the restored status", func(t *testing.T) {
		m, err := lifecycle.RestoreMilestone(kernel.NewUUID(), "Final", lifecycle.Percentage(dec("20")),
			"after handover", lifecycle.MilestonePaid)

		require.NoError(t, err)
		assert.True(t, m.IsPaid())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := lifecycle.RestoreMilestone(kernel.NewUUID(), "Final", lifecycle.Percentage(dec("20")),
			"", lifecycle.UnknownMilestoneStatus)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMilestone_ResolvedAmount(t *testing.T) {
	pct, _ := lifecycle.NewMilestone(kernel.NewUUID(), "Advance", lifecycle.Percentage(dec("30")), "")
	fixed, _ := lifecycle.NewMilestone(kernel.NewUUID(), "Mobilisation", lifecycle.FixedValue(dec("7500")), "")

	assert.True(t, dec("15000").Equal(pct.ResolvedAmount(dec("50000"))))
	assert.True(t, dec("7500").Equal(fixed.ResolvedAmount(dec("50000"))))
}

func TestParseMilestoneStatus(t *testing.T) {
	pending, err := lifecycle.ParseMilestoneStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.MilestonePending, pending)
	assert.Equal(t, "pending", pending.String())

	paid, err := lifecycle.ParseMilestoneStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.MilestonePaid, paid)
	assert.Equal(t, "paid", paid.String())

	_, err = lifecycle.ParseMilestoneStatus("overdue")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", lifecycle.UnknownMilestoneStatus.String())
}
