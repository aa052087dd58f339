package pipelineapimodels

import (
	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
	"strings"
	"time"
)

type StageStatusUpdate struct {
	CandidateID   string                `json:"candidate_id"`
	RequirementID string                `json:"requirement_id"`
	StageID       string                `json:"stage_id"`
	Status        models.ProgressStatus `json:"status"`
	Decision      models.Decision       `json:"decision"` // NONE when omitted
}

func (s *StageStatusUpdate) Validate() error {
	if s.CandidateID == "" {
		return apperrors.NewValidation("candidate_id is required")
	}
	if s.RequirementID == "" {
		return apperrors.NewValidation("requirement_id is required")
	}
	if s.StageID == "" {
		return apperrors.NewValidation("stage_id is required")
	}
	s.Status = models.ProgressStatus(strings.ToUpper(strings.TrimSpace(string(s.Status))))
	if !s.Status.IsValid() {
		return apperrors.NewValidation("invalid status: %q", s.Status)
	}
	s.Decision = models.Decision(strings.ToUpper(strings.TrimSpace(string(s.Decision))))
	if s.Decision == "" {
		s.Decision = models.DecisionNone
	}
	if !s.Decision.IsValid() {
		return apperrors.NewValidation("invalid decision: %q", s.Decision)
	}
	return nil
}

type RecruiterDecision struct {
	CandidateID    string          `json:"candidate_id"`
	RequirementID  string          `json:"requirement_id"`  // Requirement ID or title
	RequirementRef string          `json:"requirement_ref"` // Alternative to requirement_id
	Decision       models.Decision `json:"decision"`        // MOVE_NEXT | HOLD | REJECT
	NextStage      string          `json:"next_stage"`      // Required for MOVE_NEXT
	Recruiter      string          `json:"-"`
}

func (r RecruiterDecision) GetRequirementRef() string {
	if strings.TrimSpace(r.RequirementID) != "" {
		return strings.TrimSpace(r.RequirementID)
	}
	return strings.TrimSpace(r.RequirementRef)
}

func (r *RecruiterDecision) Validate() error {
	if strings.TrimSpace(r.CandidateID) == "" {
		return apperrors.NewValidation("candidate_id is required")
	}
	if r.GetRequirementRef() == "" {
		return apperrors.NewValidation("requirement_id is required")
	}
	r.Decision = models.Decision(strings.ToUpper(strings.TrimSpace(string(r.Decision))))
	if !r.Decision.IsRecruiterDecision() {
		return apperrors.NewValidation("decision must be one of MOVE_NEXT, HOLD, REJECT")
	}
	r.NextStage = strings.TrimSpace(r.NextStage)
	if r.Decision == models.DecisionMoveNext && r.NextStage == "" {
		return apperrors.NewValidation("next_stage is required for MOVE_NEXT")
	}
	return nil
}

type DecisionResult struct {
	Status   string          `json:"status"`   // "updated"
	Decision models.Decision `json:"decision"` // Applied decision
}

type AssignCandidate struct {
	CandidateID    string `json:"candidate_id"`
	RequirementID  string `json:"requirement_id"`
	RequirementRef string `json:"requirement_ref"`
}

func (a AssignCandidate) GetRequirementRef() string {
	if strings.TrimSpace(a.RequirementID) != "" {
		return strings.TrimSpace(a.RequirementID)
	}
	return strings.TrimSpace(a.RequirementRef)
}

func (a AssignCandidate) Validate() error {
	if strings.TrimSpace(a.CandidateID) == "" {
		return apperrors.NewValidation("candidate_id is required")
	}
	if a.GetRequirementRef() == "" {
		return apperrors.NewValidation("requirement_id is required")
	}
	return nil
}

type ProgressView struct {
	ID             string                `json:"id"`
	CandidateID    string                `json:"candidate_id"`
	RequirementID  string                `json:"requirement_id"`
	StageID        string                `json:"stage_id,omitempty"` // empty for pipeline level rows
	StageName      string                `json:"stage_name"`
	Status         models.ProgressStatus `json:"status"`
	Decision       models.Decision       `json:"decision"`
	ManualDecision models.Decision       `json:"manual_decision"`
	Category       string                `json:"category,omitempty"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func ProgressConvert(rec dbmodels.CandidateProgress) ProgressView {
	return ProgressView{
		ID:             rec.ID,
		CandidateID:    rec.CandidateID,
		RequirementID:  rec.RequirementID,
		StageID:        rec.StageID,
		StageName:      rec.StageName,
		Status:         rec.Status,
		Decision:       rec.Decision,
		ManualDecision: rec.ManualDecision,
		Category:       rec.Category,
		UpdatedAt:      rec.UpdatedAt,
	}
}

func ProgressListConvert(list []dbmodels.CandidateProgress) []ProgressView {
	result := make([]ProgressView, 0, len(list))
	for _, rec := range list {
		result = append(result, ProgressConvert(rec))
	}
	return result
}

type CurrentProgressView struct {
	ProgressView
	CandidateName    string `json:"candidate_name"`
	RequirementTitle string `json:"requirement_title"`
}
