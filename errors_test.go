package techquiry_test

import (
	stderrors "errors"
	"testing"

	"github.com/aggelowe/techquiry"
	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	t.Run("forbidden operation", func(t *testing.T) {
		err := techquiry.NewForbiddenOperation("the requested user update is forbidden")

		assert.Equal(t, goerrors.CategoryAuthz, err.Category)
		assert.Equal(t, techquiry.TextCodeForbiddenOperation, err.TextCode)
		assert.True(t, techquiry.IsForbiddenOperation(err))
		assert.False(t, techquiry.IsInvalidRequest(err))
	})

	t.Run("invalid request", func(t *testing.T) {
		err := techquiry.NewInvalidRequest("the given username is not available")

		assert.Equal(t, goerrors.CategoryValidation, err.Category)
		assert.Equal(t, techquiry.TextCodeInvalidRequest, err.TextCode)
		assert.True(t, techquiry.IsInvalidRequest(err))
		assert.False(t, techquiry.IsEntityNotFound(err))
	})

	t.Run("entity not found", func(t *testing.T) {
		err := techquiry.NewEntityNotFound("the requested user does not exist")

		assert.Equal(t, goerrors.CategoryNotFound, err.Category)
		assert.Equal(t, techquiry.TextCodeEntityNotFound, err.TextCode)
		assert.True(t, techquiry.IsEntityNotFound(err))
	})

	t.Run("internal error wraps its cause", func(t *testing.T) {
		cause := stderrors.New("connection reset")
		err := techquiry.NewInternalError("an internal error occurred while authenticating", cause)

		assert.Equal(t, goerrors.CategoryInternal, err.Category)
		assert.Equal(t, techquiry.TextCodeInternalError, err.TextCode)
		assert.True(t, techquiry.IsInternalError(err))

		var richErr *goerrors.Error
		require.True(t, goerrors.As(err, &richErr))
		assert.ErrorIs(t, richErr, cause)
	})

	t.Run("nil and foreign errors match no kind", func(t *testing.T) {
		assert.False(t, techquiry.IsForbiddenOperation(nil))
		assert.False(t, techquiry.IsInvalidRequest(stderrors.New("plain")))
		assert.False(t, techquiry.IsInternalError(nil))
	})
}
