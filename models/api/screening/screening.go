package screeningapimodels

import (
	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
	"strings"
	"time"
)

type ScreenRequest struct {
	CandidateID    string `json:"candidate_id"`
	RequirementID  string `json:"requirement_id"`  // Requirement ID or title
	RequirementRef string `json:"requirement_ref"` // Alternative to requirement_id
}

func (s ScreenRequest) GetRequirementRef() string {
	if strings.TrimSpace(s.RequirementID) != "" {
		return strings.TrimSpace(s.RequirementID)
	}
	return strings.TrimSpace(s.RequirementRef)
}

func (s ScreenRequest) Validate() error {
	if strings.TrimSpace(s.CandidateID) == "" {
		return apperrors.NewValidation("candidate_id is required")
	}
	if s.GetRequirementRef() == "" {
		return apperrors.NewValidation("requirement_id is required")
	}
	return nil
}

// Result is the normalised LLM verdict.
type Result struct {
	Score     float64               `json:"score"`
	Rationale []string              `json:"rationale"`
	RedFlags  []string              `json:"red_flags"`
	Recommend models.Recommendation `json:"recommend"`
}

type ScreenResponse struct {
	Result
	ScreeningID   string `json:"screening_id"`
	CandidateID   string `json:"candidate_id"`
	RequirementID string `json:"requirement_id"`
	ModelVersion  string `json:"model_version,omitempty"`
	Message       string `json:"message,omitempty"`
}

type ScreeningView struct {
	ID            string                 `json:"id"`
	CandidateID   string                 `json:"candidate_id"`
	RequirementID string                 `json:"requirement_id"`
	Score         float64                `json:"score"`
	Rationale     []string               `json:"rationale"`
	RedFlags      []string               `json:"red_flags"`
	Recommend     models.Recommendation  `json:"recommend"`
	ModelVersion  string                 `json:"model_version,omitempty"`
	Status        models.ScreeningStatus `json:"status"`
	Error         string                 `json:"error,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

func ScreeningConvert(rec dbmodels.CandidateScreening) ScreeningView {
	rationale := []string(rec.AiRationale)
	if rationale == nil {
		rationale = []string{}
	}
	redFlags := []string(rec.RedFlags)
	if redFlags == nil {
		redFlags = []string{}
	}
	return ScreeningView{
		ID:            rec.ID,
		CandidateID:   rec.CandidateID,
		RequirementID: rec.RequirementID,
		Score:         rec.AiScore,
		Rationale:     rationale,
		RedFlags:      redFlags,
		Recommend:     rec.Recommend,
		ModelVersion:  rec.ModelVersion,
		Status:        rec.Status,
		Error:         rec.Error,
		CreatedAt:     rec.CreatedAt,
	}
}
