package delivery_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("should create actor for both roles", func(t *testing.T) {
		for _, role := range []delivery.Role{delivery.RoleTrainer, delivery.RoleClient} {
			id := kernel.NewUUID()

			actor, err := delivery.NewActor(id, role)

			require.NoError(t, err)
			require.NoError(t, actor.Validate())
			assert.True(t, actor.ID().IsEqual(id))
			assert.Equal(t, role, actor.Role())
		}
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := delivery.NewActor(invalidID, delivery.RoleTrainer)

		require.Error(t, err)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := delivery.NewActor(kernel.NewUUID(), delivery.Role("admin"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "role is invalid")
	})

	t.Run("zero-value actor fails validation", func(t *testing.T) {
		var actor delivery.Actor

		require.Error(t, actor.Validate())
	})
}

func TestMethod_Validate(t *testing.T) {
	valid := []delivery.Method{
		delivery.MethodInPerson,
		delivery.MethodLocker,
		delivery.MethodFrontDesk,
		delivery.MethodShipped,
	}

	for _, method := range valid {
		t.Run("should accept "+method.String(), func(t *testing.T) {
			require.NoError(t, method.Validate())
		})
	}

	t.Run("should reject unknown method", func(t *testing.T) {
		require.Error(t, delivery.Method("drone").Validate())
	})

	t.Run("should reject empty method", func(t *testing.T) {
		require.Error(t, delivery.Method("").Validate())
	})
}
