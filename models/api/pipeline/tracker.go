package pipelineapimodels

import (
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
	"time"
)

type TrackerRequirement struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	Status   string `json:"status"`
}

func TrackerRequirementConvert(rec dbmodels.Requirement) TrackerRequirement {
	return TrackerRequirement{
		ID:       rec.ID,
		Title:    rec.Title,
		Location: rec.Location,
		ClientID: rec.ClientID,
		Status:   string(rec.Status),
	}
}

type TrackerStage struct {
	StageID        string                `json:"stage_id"`
	StageName      string                `json:"stage_name"`
	StageOrder     int                   `json:"stage_order"`
	Status         models.ProgressStatus `json:"status"`
	Decision       models.Decision       `json:"decision"`
	ManualDecision models.Decision       `json:"manual_decision"`
	UpdatedAt      *time.Time            `json:"updated_at"`
}

type TrackerItem struct {
	Requirement TrackerRequirement `json:"requirement"`
	Stages      []TrackerStage     `json:"stages"`
	Current     *ProgressView      `json:"current"` // latest progress row, pipeline level included
}
