package pipeline

import (
	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/models"
)

// Outcome is the progress mutation a decision translates into.
type Outcome struct {
	Status            models.ProgressStatus
	Decision          models.Decision
	StageLabel        string
	ScheduleInterview bool
}

// Transition maps a recruiter decision onto a progress outcome.
func Transition(decision models.Decision, nextStage string) (Outcome, error) {
	switch decision {
	case models.DecisionReject:
		return Outcome{
			Status:     models.ProgressStatusRejected,
			Decision:   models.DecisionReject,
			StageLabel: models.StageLabelRejected,
		}, nil
	case models.DecisionHold:
		return Outcome{
			Status:     models.ProgressStatusPending,
			Decision:   models.DecisionHold,
			StageLabel: models.StageLabelOnHold,
		}, nil
	case models.DecisionMoveNext:
		if nextStage == "" {
			return Outcome{}, apperrors.NewValidation("next_stage is required for MOVE_NEXT")
		}
		return Outcome{
			Status:            models.ProgressStatusInProgress,
			Decision:          models.DecisionMoveNext,
			StageLabel:        nextStage,
			ScheduleInterview: true,
		}, nil
	case models.DecisionNone:
		return Outcome{}, apperrors.NewValidation("decision NONE cannot be applied by a recruiter")
	}
	return Outcome{}, apperrors.NewValidation("unknown decision: %q", decision)
}

// ScreeningOutcome keeps a candidate visible for manual review whether or not
// the automated screening succeeded.
func ScreeningOutcome(succeeded bool) Outcome {
	if succeeded {
		return Outcome{
			Status:     models.ProgressStatusReviewRequired,
			Decision:   models.DecisionNone,
			StageLabel: models.StageLabelManualReview,
		}
	}
	return Outcome{
		Status:     models.ProgressStatusReviewRequired,
		Decision:   models.DecisionHold,
		StageLabel: models.StageLabelScreeningFailed,
	}
}
