package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, KindValidation, KindOf(Validation("bad input")))
	require.Equal(t, KindConflict, KindOf(Conflict("taken")))
	require.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	require.Equal(t, KindAuthentication, KindOf(Authentication("who are you")))
	require.Equal(t, KindAuthorization, KindOf(Authorization("not yours")))
	require.Equal(t, KindDelivery, KindOf(Delivery("smtp down", errors.New("dial tcp"))))

	// Plain errors default to internal.
	require.Equal(t, KindInternal, KindOf(errors.New("boom")))
	require.Equal(t, KindInternal, KindOf(nil))
}

func TestKindOf_Wrapped(t *testing.T) {
	inner := Conflict("row exists")
	wrapped := fmt.Errorf("create user: %w", inner)

	require.Equal(t, KindConflict, KindOf(wrapped))
	require.True(t, IsKind(wrapped, KindConflict))
	require.False(t, IsKind(wrapped, KindNotFound))
}

func TestErrorMessage(t *testing.T) {
	e := NotFound("user %s not found", "alice")
	require.Equal(t, "user alice not found", e.Error())

	cause := errors.New("connection refused")
	wrapped := Internal("failed to save", cause)
	require.Contains(t, wrapped.Error(), "failed to save")
	require.ErrorIs(t, wrapped, cause)
}
