package apperrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	t.Run(`wrapped errors keep their kind`, func(t *testing.T) {
		err := errors.Wrap(NewNotFound("requirement", "R1"), "recruiter decision")
		require.True(t, IsNotFound(err))
		require.False(t, IsValidation(err))
		require.Equal(t, "recruiter decision: requirement not found: R1", err.Error())

		err = errors.Wrap(NewValidation("next_stage is required for %s", "MOVE_NEXT"), "recruiter decision")
		require.True(t, IsValidation(err))
		require.False(t, IsConflict(err))

		require.True(t, IsConflict(NewConflict("stages already exist")))
		require.True(t, IsUnauthorized(errors.Wrap(NewUnauthorized("invalid e-mail or password"), "login")))
		require.True(t, IsForbidden(NewForbidden("signup not allowed")))
	})
	t.Run(`plain errors have no kind`, func(t *testing.T) {
		err := errors.New("boom")
		require.False(t, IsValidation(err))
		require.False(t, IsNotFound(err))
		require.False(t, IsConflict(err))
		require.False(t, IsUnauthorized(err))
		require.False(t, IsForbidden(err))
	})
}
