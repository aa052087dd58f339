package pipelineapimodels

import (
	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/models"
	screeningapimodels "ats-backend/models/api/screening"
	dbmodels "ats-backend/models/db"
	"strings"
	"time"
)

type InterviewCreate struct {
	CandidateID   string `json:"candidate_id"`
	RequirementID string `json:"requirement_id"` // Requirement ID or title
	Category      string `json:"category"`
	Stage         string `json:"stage"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:MM
	Duration      int    `json:"duration"`
	Mode          string `json:"mode"`
	Location      string `json:"location"`
	Interviewer   string `json:"interviewer"`
	Notes         string `json:"notes"`
}

func (i *InterviewCreate) Validate() error {
	i.CandidateID = strings.TrimSpace(i.CandidateID)
	i.RequirementID = strings.TrimSpace(i.RequirementID)
	i.Stage = strings.TrimSpace(i.Stage)
	if i.CandidateID == "" {
		return apperrors.NewValidation("candidate_id is required")
	}
	if i.RequirementID == "" {
		return apperrors.NewValidation("requirement_id is required")
	}
	if i.Stage == "" {
		return apperrors.NewValidation("stage is required")
	}
	if i.Date != "" {
		if _, err := time.Parse("2006-01-02", i.Date); err != nil {
			return apperrors.NewValidation("date must be YYYY-MM-DD")
		}
	}
	if i.Time != "" {
		if _, err := time.Parse("15:04", i.Time); err != nil {
			return apperrors.NewValidation("time must be HH:MM")
		}
	}
	if i.Duration < 0 {
		return apperrors.NewValidation("duration must not be negative")
	}
	return nil
}

type InterviewStageUpdate struct {
	Stage string `json:"stage"`
}

func (i InterviewStageUpdate) Validate() error {
	if strings.TrimSpace(i.Stage) == "" {
		return apperrors.NewValidation("stage is required")
	}
	return nil
}

type InterviewStatusUpdate struct {
	Status models.InterviewStatus `json:"status"`
}

func (i *InterviewStatusUpdate) Validate() error {
	i.Status = models.InterviewStatus(strings.ToUpper(strings.TrimSpace(string(i.Status))))
	if !i.Status.IsValid() {
		return apperrors.NewValidation("invalid interview status: %q", i.Status)
	}
	return nil
}

type InterviewFilter struct {
	CandidateID   string `query:"candidate_id"`
	RequirementID string `query:"requirement_id"`
	Status        string `query:"status"`
}

type InterviewView struct {
	ID            string                 `json:"id"`
	CandidateID   string                 `json:"candidate_id"`
	RequirementID string                 `json:"requirement_id"`
	Category      string                 `json:"category,omitempty"`
	Stage         string                 `json:"stage"`
	Date          string                 `json:"date,omitempty"`
	Time          string                 `json:"time,omitempty"`
	Duration      int                    `json:"duration,omitempty"`
	Mode          string                 `json:"mode,omitempty"`
	Location      string                 `json:"location,omitempty"`
	Interviewer   string                 `json:"interviewer,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	Status        models.InterviewStatus `json:"status"`
	CreatedAt     time.Time              `json:"created_at"`
}

func InterviewConvert(rec dbmodels.Interview) InterviewView {
	return InterviewView{
		ID:            rec.ID,
		CandidateID:   rec.CandidateID,
		RequirementID: rec.RequirementID,
		Category:      rec.Category,
		Stage:         rec.Stage,
		Date:          rec.Date,
		Time:          rec.Time,
		Duration:      rec.Duration,
		Mode:          rec.Mode,
		Location:      rec.Location,
		Interviewer:   rec.Interviewer,
		Notes:         rec.Notes,
		Status:        rec.Status,
		CreatedAt:     rec.CreatedAt,
	}
}

func InterviewListConvert(list []dbmodels.Interview) []InterviewView {
	result := make([]InterviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, InterviewConvert(rec))
	}
	return result
}

type CandidateProgressDetails struct {
	CandidateID   string                            `json:"candidate_id"`
	CandidateName string                            `json:"candidate_name"`
	Requirement   TrackerRequirement                `json:"requirement"`
	Current       *ProgressView                     `json:"current"`
	Progress      []ProgressView                    `json:"progress"`
	Screening     *screeningapimodels.ScreeningView `json:"screening"`
	Interviews    []InterviewView                   `json:"interviews"`
}
