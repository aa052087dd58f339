package reportsstore

import (
	"time"

	"ats-backend/models"
	reportsapimodels "ats-backend/models/api/reports"
	dbmodels "ats-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	CountRequirements(status models.RequirementStatus) (int64, error)
	CountClosedSince(from time.Time) (int64, error)
	CountAssignedRequirements() (int64, error)
	CountUrgent(minRounds int) (int64, error)
	CountUnassignedOpen() (int64, error)
	CountCandidates() (int64, error)
	CountSelections(requirementID string) (int64, error)
	CountPipelineCandidates(requirementID string) (int64, error)
	ClientStats() (list []reportsapimodels.ClientStat, err error)
	StageStats(requirementID string, excludeStages []string) (list []reportsapimodels.StageStat, err error)
	StageCandidates(requirementID, stageName string) (list []reportsapimodels.StageCandidate, err error)
	PipelineRows(requirementID string) (list []reportsapimodels.PipelineRow, err error)
	ActiveClients() (list []reportsapimodels.ClientItem, err error)
	ClientRequirements(clientID string) (list []reportsapimodels.ClientRequirement, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// CountRequirements counts every requirement when status is empty.
func (i impl) CountRequirements(status models.RequirementStatus) (count int64, err error) {
	tx := i.db.Model(&dbmodels.Requirement{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err = tx.Count(&count).Error
	return count, err
}

func (i impl) CountClosedSince(from time.Time) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Requirement{}).
		Where("status = ? and created_at >= ?", models.RequirementStatusClosed, from).
		Count(&count).
		Error
	return count, err
}

func (i impl) CountAssignedRequirements() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.RequirementAllocation{}).
		Distinct("requirement_id").
		Count(&count).
		Error
	return count, err
}

func (i impl) CountUrgent(minRounds int) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Requirement{}).
		Where("status = ? and no_of_rounds > ?", models.RequirementStatusOpen, minRounds).
		Count(&count).
		Error
	return count, err
}

func (i impl) CountUnassignedOpen() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Requirement{}).
		Where("status = ?", models.RequirementStatusOpen).
		Where("id not in (?)", i.db.Model(&dbmodels.RequirementAllocation{}).Select("requirement_id")).
		Count(&count).
		Error
	return count, err
}

func (i impl) CountCandidates() (count int64, err error) {
	err = i.db.Model(&dbmodels.Candidate{}).Count(&count).Error
	return count, err
}

// CountSelections counts candidates that completed the last round, over all requirements when requirementID is empty.
func (i impl) CountSelections(requirementID string) (count int64, err error) {
	tx := i.db.
		Table("candidate_progress cp").
		Joins("join requirements r on r.id = cp.requirement_id").
		Joins("join requirement_stages rs on rs.id = cp.stage_id").
		Where("cp.status = ? and rs.stage_order = r.no_of_rounds", models.ProgressStatusCompleted)
	if requirementID != "" {
		tx = tx.Where("cp.requirement_id = ?", requirementID)
	}
	pairs := []struct {
		CandidateID   string
		RequirementID string
	}{}
	err = tx.Select("distinct cp.candidate_id, cp.requirement_id").Scan(&pairs).Error
	return int64(len(pairs)), err
}

func (i impl) CountPipelineCandidates(requirementID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.CandidateProgress{}).
		Where("requirement_id = ?", requirementID).
		Distinct("candidate_id").
		Count(&count).
		Error
	return count, err
}

func (i impl) ClientStats() (list []reportsapimodels.ClientStat, err error) {
	list = []reportsapimodels.ClientStat{}
	err = i.db.
		Table("clients c").
		Select("c.id as client_id, c.name as client_name, count(r.id) as req_count").
		Joins("left join requirements r on r.client_id = c.id").
		Group("c.id, c.name").
		Order("c.name").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) StageStats(requirementID string, excludeStages []string) (list []reportsapimodels.StageStat, err error) {
	list = []reportsapimodels.StageStat{}
	tx := i.db.
		Table("candidate_progress cp").
		Select("cp.stage_name, cp.status, count(*) as count, rs.stage_order").
		Joins("left join requirement_stages rs on rs.id = cp.stage_id").
		Where("cp.requirement_id = ?", requirementID)
	if len(excludeStages) != 0 {
		tx = tx.Where("cp.stage_name not in (?)", excludeStages)
	}
	err = tx.
		Group("cp.stage_name, cp.status, rs.stage_order").
		Order("rs.stage_order, cp.stage_name, cp.status").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) StageCandidates(requirementID, stageName string) (list []reportsapimodels.StageCandidate, err error) {
	list = []reportsapimodels.StageCandidate{}
	err = i.db.
		Table("candidate_progress cp").
		Select("c.id, c.name, c.email, cp.status, cp.updated_at").
		Joins("join candidates c on c.id = cp.candidate_id").
		Where("cp.requirement_id = ? and cp.stage_name = ?", requirementID, stageName).
		Order("cp.updated_at desc").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) PipelineRows(requirementID string) (list []reportsapimodels.PipelineRow, err error) {
	list = []reportsapimodels.PipelineRow{}
	err = i.db.
		Table("candidate_progress cp").
		Select("c.name as candidate_name, c.email as candidate_email, cp.stage_name, cp.status, cp.decision, cp.updated_at").
		Joins("join candidates c on c.id = cp.candidate_id").
		Joins("left join requirement_stages rs on rs.id = cp.stage_id").
		Where("cp.requirement_id = ?", requirementID).
		Order("c.name, rs.stage_order, cp.updated_at").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ActiveClients() (list []reportsapimodels.ClientItem, err error) {
	list = []reportsapimodels.ClientItem{}
	err = i.db.
		Model(&dbmodels.Client{}).
		Select("id, name").
		Where("status = ?", models.ClientStatusActive).
		Order("name").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ClientRequirements(clientID string) (list []reportsapimodels.ClientRequirement, err error) {
	list = []reportsapimodels.ClientRequirement{}
	err = i.db.
		Model(&dbmodels.Requirement{}).
		Select("id, title, status, created_at").
		Where("client_id = ?", clientID).
		Order("created_at desc").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
