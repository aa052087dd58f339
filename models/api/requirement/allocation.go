package requirementapimodels

import (
	"strings"
	"time"

	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type AllocationCreate struct {
	RecruiterID string `json:"recruiter_id"` // User with RECRUITER or TEAM_LEAD role
	AssignedBy  string `json:"-"`
}

func (a AllocationCreate) Validate() error {
	if strings.TrimSpace(a.RecruiterID) == "" {
		return apperrors.NewValidation("recruiter_id is required")
	}
	return nil
}

type AllocationView struct {
	ID               string                  `json:"id"`
	RequirementID    string                  `json:"requirement_id"`
	RequirementTitle string                  `json:"requirement_title"`
	RecruiterID      string                  `json:"recruiter_id"`
	RecruiterName    string                  `json:"recruiter_name"`
	AssignedBy       string                  `json:"assigned_by"`
	Status           models.AllocationStatus `json:"status"`
	CreatedAt        time.Time               `json:"created_at"`
}

func AllocationConvert(rec dbmodels.RequirementAllocation) AllocationView {
	result := AllocationView{
		ID:            rec.ID,
		RequirementID: rec.RequirementID,
		RecruiterID:   rec.RecruiterID,
		AssignedBy:    rec.AssignedBy,
		Status:        rec.Status,
		CreatedAt:     rec.CreatedAt,
	}
	if rec.Requirement != nil {
		result.RequirementTitle = rec.Requirement.Title
	}
	if rec.Recruiter != nil {
		result.RecruiterName = rec.Recruiter.Name
	}
	return result
}

func AllocationListConvert(list []dbmodels.RequirementAllocation) []AllocationView {
	result := make([]AllocationView, 0, len(list))
	for _, rec := range list {
		result = append(result, AllocationConvert(rec))
	}
	return result
}

// RecruiterRequirementView is an allocation joined with its requirement.
type RecruiterRequirementView struct {
	AllocationID string                  `json:"allocation_id"`
	AssignedDate time.Time               `json:"assigned_date"`
	Status       models.AllocationStatus `json:"status"`
	AssignedBy   string                  `json:"assigned_by"`
	Requirement  RequirementView         `json:"requirement"`
}
