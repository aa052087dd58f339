package pipeline

import (
	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	t.Run(`reject`, func(t *testing.T) {
		outcome, err := Transition(models.DecisionReject, "")
		require.Nil(t, err)
		require.Equal(t, models.ProgressStatusRejected, outcome.Status)
		require.Equal(t, models.DecisionReject, outcome.Decision)
		require.Equal(t, "Rejected", outcome.StageLabel)
		require.False(t, outcome.ScheduleInterview)
	})
	t.Run(`hold`, func(t *testing.T) {
		outcome, err := Transition(models.DecisionHold, "ignored")
		require.Nil(t, err)
		require.Equal(t, models.ProgressStatusPending, outcome.Status)
		require.Equal(t, models.DecisionHold, outcome.Decision)
		require.Equal(t, "On Hold", outcome.StageLabel)
	})
	t.Run(`move next`, func(t *testing.T) {
		outcome, err := Transition(models.DecisionMoveNext, "Round 2")
		require.Nil(t, err)
		require.Equal(t, models.ProgressStatusInProgress, outcome.Status)
		require.Equal(t, "Round 2", outcome.StageLabel)
		require.True(t, outcome.ScheduleInterview)

		_, err = Transition(models.DecisionMoveNext, "")
		require.True(t, apperrors.IsValidation(err))
	})
	t.Run(`none and unknown are rejected`, func(t *testing.T) {
		_, err := Transition(models.DecisionNone, "")
		require.True(t, apperrors.IsValidation(err))
		_, err = Transition(models.Decision("PROMOTE"), "")
		require.True(t, apperrors.IsValidation(err))
	})
	t.Run(`screening outcomes`, func(t *testing.T) {
		ok := ScreeningOutcome(true)
		require.Equal(t, models.ProgressStatusReviewRequired, ok.Status)
		require.Equal(t, models.DecisionNone, ok.Decision)
		require.Equal(t, "Manual Review", ok.StageLabel)

		failed := ScreeningOutcome(false)
		require.Equal(t, models.ProgressStatusReviewRequired, failed.Status)
		require.Equal(t, models.DecisionHold, failed.Decision)
		require.Equal(t, "Screening Failed", failed.StageLabel)
	})
}
