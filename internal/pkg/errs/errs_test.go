package errs_test

import (
	"errors"
	"testing"

	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("7 is not a valid status"))

		assert.Equal(t, "value is invalid: status (cause: 7 is not a valid status)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

		assert.Equal(t, 0, err.Value)
		assert.Equal(t, "value is out of range: %!s(int=0) is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("limit", "-5", 1, 100, errors.New("validation failed"))

		assert.Equal(t,
			"value is out of range: -5 is limit, min value is 1, max value is 100 (cause: validation failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("shipping address")
	assert.Equal(t, "value is required: shipping address", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("courier name", errors.New("blank"))
	assert.Equal(t, "value is required: courier name (cause: blank)", withCause.Error())
}

func TestInvalidStateTransitionError(t *testing.T) {
	err := errs.NewInvalidStateTransitionError("dispatch", "REJECTED", "APPROVED", "ACCEPTED", "IN_TRANSIT")

	assert.Equal(t, "dispatch", err.Operation)
	assert.Equal(t, "REJECTED", err.Current)
	assert.Equal(t, []string{"APPROVED", "ACCEPTED", "IN_TRANSIT"}, err.Allowed)
	assert.Equal(t,
		"invalid state transition: cannot dispatch order in status REJECTED (allowed from: APPROVED, ACCEPTED, IN_TRANSIT)",
		err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
}

func TestReferencedEntityMissingError(t *testing.T) {
	err := errs.NewReferencedEntityMissingError("product", "8f9c")

	assert.Equal(t, "referenced entity missing: product 8f9c", err.Error())
	require.ErrorIs(t, err, errs.ErrReferencedEntityMissing)
}

func TestUnknownUserError(t *testing.T) {
	err := errs.NewUnknownUserError("ghost")

	assert.Equal(t, "unknown user: ghost", err.Error())
	require.ErrorIs(t, err, errs.ErrUnknownUser)
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works through wrapping", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), errs.NewObjectNotFoundError("order", "1"))
		require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)
	})

	t.Run("errors.As extracts details", func(t *testing.T) {
		var err error = errs.NewInvalidStateTransitionError("approve", "APPROVED", "PENDING_APPROVAL")

		var transitionErr *errs.InvalidStateTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "approve", transitionErr.Operation)
	})

	t.Run("sentinel messages", func(t *testing.T) {
		assert.Equal(t, "order must contain at least one item", errs.ErrEmptyOrder.Error())
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	})
}
