package delivery_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []delivery.Status{
		delivery.StatusPending,
		delivery.StatusReady,
		delivery.StatusScheduled,
		delivery.StatusOutForDelivery,
		delivery.StatusDelivered,
		delivery.StatusConfirmed,
		delivery.StatusDisputed,
		delivery.StatusCancelled,
	}

	for _, status := range valid {
		t.Run("should accept "+status.String(), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject unknown status", func(t *testing.T) {
		err := delivery.Status("returned").Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty status", func(t *testing.T) {
		require.Error(t, delivery.Status("").Validate())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, delivery.StatusConfirmed.IsTerminal())
	assert.True(t, delivery.StatusCancelled.IsTerminal())

	assert.False(t, delivery.StatusPending.IsTerminal())
	assert.False(t, delivery.StatusReady.IsTerminal())
	assert.False(t, delivery.StatusScheduled.IsTerminal())
	assert.False(t, delivery.StatusOutForDelivery.IsTerminal())
	assert.False(t, delivery.StatusDelivered.IsTerminal())
	assert.False(t, delivery.StatusDisputed.IsTerminal())
}

func TestStatus_AllowsReschedule(t *testing.T) {
	assert.True(t, delivery.StatusPending.AllowsReschedule())
	assert.True(t, delivery.StatusReady.AllowsReschedule())
	assert.True(t, delivery.StatusScheduled.AllowsReschedule())

	assert.False(t, delivery.StatusOutForDelivery.AllowsReschedule())
	assert.False(t, delivery.StatusDelivered.AllowsReschedule())
	assert.False(t, delivery.StatusConfirmed.AllowsReschedule())
	assert.False(t, delivery.StatusDisputed.AllowsReschedule())
	assert.False(t, delivery.StatusCancelled.AllowsReschedule())
}

func TestAllowedSources(t *testing.T) {
	t.Run("should list the sources of a gated operation", func(t *testing.T) {
		sources := delivery.AllowedSources(delivery.OpMarkReady)

		assert.Equal(t, []delivery.Status{delivery.StatusPending}, sources)
	})

	t.Run("should return nil for operations allowed from any non-terminal state", func(t *testing.T) {
		assert.Nil(t, delivery.AllowedSources(delivery.OpCancel))
	})

	t.Run("should include both dispute sources", func(t *testing.T) {
		sources := delivery.AllowedSources(delivery.OpReportIssue)

		assert.ElementsMatch(t,
			[]delivery.Status{delivery.StatusReady, delivery.StatusDelivered}, sources)
	})

	t.Run("should return empty slice for unknown operation", func(t *testing.T) {
		assert.Empty(t, delivery.AllowedSources(delivery.Operation("teleport")))
	})
}
