package pipelineapimodels

import (
	apperrors "ats-backend/lib/utils/app-errors"
	dbmodels "ats-backend/models/db"
)

const MaxRounds = 20

type StagesCreate struct {
	NoOfRounds int      `json:"no_of_rounds"` // Number of rounds, 1 when omitted
	StageNames []string `json:"stage_names"`  // Optional custom names, "Round {i}" for blanks
}

func (s StagesCreate) Validate() error {
	if s.NoOfRounds > MaxRounds {
		return apperrors.NewValidation("no_of_rounds must not exceed %d", MaxRounds)
	}
	return nil
}

type StageView struct {
	ID          string `json:"id"`           // Stage ID
	StageOrder  int    `json:"stage_order"`  // Position, 1-based
	StageName   string `json:"stage_name"`   // Stage name
	IsMandatory bool   `json:"is_mandatory"` // Mandatory flag
}

func StageConvert(rec dbmodels.RequirementStage) StageView {
	return StageView{
		ID:          rec.ID,
		StageOrder:  rec.StageOrder,
		StageName:   rec.StageName,
		IsMandatory: rec.IsMandatory,
	}
}

func StageListConvert(list []dbmodels.RequirementStage) []StageView {
	result := make([]StageView, 0, len(list))
	for _, rec := range list {
		result = append(result, StageConvert(rec))
	}
	return result
}
