package models

type ProgressStatus string

const (
	ProgressStatusPending        ProgressStatus = "PENDING"
	ProgressStatusInProgress     ProgressStatus = "IN_PROGRESS"
	ProgressStatusCompleted      ProgressStatus = "COMPLETED"
	ProgressStatusRejected       ProgressStatus = "REJECTED"
	ProgressStatusReviewRequired ProgressStatus = "REVIEW_REQUIRED"
)

func (s ProgressStatus) IsValid() bool {
	switch s {
	case ProgressStatusPending,
		ProgressStatusInProgress,
		ProgressStatusCompleted,
		ProgressStatusRejected,
		ProgressStatusReviewRequired:
		return true
	}
	return false
}

type Decision string

const (
	DecisionNone     Decision = "NONE"
	DecisionMoveNext Decision = "MOVE_NEXT"
	DecisionHold     Decision = "HOLD"
	DecisionReject   Decision = "REJECT"
)

func (d Decision) IsValid() bool {
	switch d {
	case DecisionNone, DecisionMoveNext, DecisionHold, DecisionReject:
		return true
	}
	return false
}

// IsRecruiterDecision reports whether d can be submitted by a recruiter.
func (d Decision) IsRecruiterDecision() bool {
	switch d {
	case DecisionMoveNext, DecisionHold, DecisionReject:
		return true
	}
	return false
}

// Labels written to candidate_progress.stage_name for rows that do not
// name a defined requirement stage.
const (
	StageLabelRejected         = "Rejected"
	StageLabelOnHold           = "On Hold"
	StageLabelManualReview     = "Manual Review"
	StageLabelScreeningFailed  = "Screening Failed"
	StageLabelManualAssignment = "Manual Assignment"
)

// ManualStageLabels are excluded from per-stage report statistics.
var ManualStageLabels = []string{StageLabelManualReview, StageLabelManualAssignment}

type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "SCHEDULED"
	InterviewStatusCompleted InterviewStatus = "COMPLETED"
	InterviewStatusCancelled InterviewStatus = "CANCELLED"
)

func (s InterviewStatus) IsValid() bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled:
		return true
	}
	return false
}

type ScreeningStatus string

const (
	ScreeningStatusDone  ScreeningStatus = "DONE"
	ScreeningStatusError ScreeningStatus = "ERROR"
)

type Recommendation string

const (
	RecommendShortlisted    Recommendation = "SHORTLISTED"
	RecommendRejected       Recommendation = "REJECTED"
	RecommendNeedsInterview Recommendation = "NEEDS_INTERVIEW"
	RecommendManualReview   Recommendation = "MANUAL_REVIEW"
)

const DefaultRequirementCategory = "IT"
