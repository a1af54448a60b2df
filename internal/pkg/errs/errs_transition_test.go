package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("mark ready", "ready")

		assert.Equal(t, "mark ready", err.Operation)
		assert.Equal(t, "ready", err.From)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid transition: cannot mark ready from status ready", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal state")
		err := errs.NewInvalidTransitionErrorWithCause("cancel", "confirmed", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid transition: cannot cancel from status confirmed (cause: terminal state)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("confirm receipt", "trainer")

		assert.Equal(t, "confirm receipt", err.Operation)
		assert.Equal(t, "trainer", err.Role)
		require.NoError(t, err.Cause)
		assert.Equal(t, "actor is not permitted: trainer may not confirm receipt", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("message is distinct from transition errors", func(t *testing.T) {
		stateErr := errs.NewInvalidTransitionError("confirm receipt", "pending")
		actorErr := errs.NewUnauthorizedError("confirm receipt", "trainer")

		assert.NotContains(t, actorErr.Error(), "from status")
		assert.NotContains(t, stateErr.Error(), "may not")
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("delivery", "123")

		assert.Equal(t, "delivery", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "concurrent modification conflict: 123", err.Error())
		assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("version mismatch")
		err := errs.NewConflictErrorWithCause("delivery", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"concurrent modification conflict: param is: delivery, ID is: 123 (cause: version mismatch)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	})
}
