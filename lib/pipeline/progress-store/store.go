package progressstore

import (
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Upsert(rec dbmodels.CandidateProgress, updateColumns ...string) (*dbmodels.CandidateProgress, error)
	InsertIfAbsent(rec dbmodels.CandidateProgress) (inserted bool, err error)
	Get(candidateID, requirementID, stageID string) (*dbmodels.CandidateProgress, error)
	Latest(candidateID, requirementID string) (*dbmodels.CandidateProgress, error)
	LatestDefinedStage(candidateID, requirementID string) (*dbmodels.CandidateProgress, error)
	SetStatus(id string, status models.ProgressStatus) error
	ListByCandidate(candidateID string) (list []dbmodels.CandidateProgress, err error)
	ListByCandidateRequirement(candidateID, requirementID string) (list []dbmodels.CandidateProgress, err error)
	ListByRequirement(requirementID string) (list []dbmodels.CandidateProgress, err error)
	ListLatestPerCandidate() (list []dbmodels.CandidateProgress, err error)
	DeleteByRequirement(requirementID string) error
	DeleteByCandidate(candidateID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

var upsertKey = []clause.Column{{Name: "candidate_id"}, {Name: "requirement_id"}, {Name: "stage_id"}}

// ColumnsAll is the default set overwritten by Upsert.
var ColumnsAll = []string{"stage_name", "status", "decision", "manual_decision", "category", "updated_at"}

// ColumnsAutomated leaves manual_decision untouched.
var ColumnsAutomated = []string{"stage_name", "status", "decision", "category", "updated_at"}

// Upsert writes the row for the (candidate, requirement, stage) triple in a single
// statement; an existing row gets updateColumns (ColumnsAll when empty) overwritten in place.
func (i impl) Upsert(rec dbmodels.CandidateProgress, updateColumns ...string) (*dbmodels.CandidateProgress, error) {
	if len(updateColumns) == 0 {
		updateColumns = ColumnsAll
	}
	if rec.Decision == "" {
		rec.Decision = models.DecisionNone
	}
	if rec.ManualDecision == "" {
		rec.ManualDecision = models.DecisionNone
	}
	rec.ID = ""
	rec.UpdatedAt = time.Now()
	err := i.db.
		Clauses(clause.OnConflict{
			Columns:   upsertKey,
			DoUpdates: clause.AssignmentColumns(updateColumns),
		}).
		Create(&rec).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "unable to upsert candidate progress")
	}
	return i.Get(rec.CandidateID, rec.RequirementID, rec.StageID)
}

func (i impl) InsertIfAbsent(rec dbmodels.CandidateProgress) (inserted bool, err error) {
	rec.ID = ""
	res := i.db.
		Clauses(clause.OnConflict{
			Columns:   upsertKey,
			DoNothing: true,
		}).
		Create(&rec)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "unable to insert candidate progress")
	}
	return res.RowsAffected > 0, nil
}

func (i impl) Get(candidateID, requirementID, stageID string) (*dbmodels.CandidateProgress, error) {
	rec := dbmodels.CandidateProgress{}
	err := i.db.
		Where("candidate_id = ?", candidateID).
		Where("requirement_id = ?", requirementID).
		Where("stage_id = ?", stageID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Latest(candidateID, requirementID string) (*dbmodels.CandidateProgress, error) {
	return i.latest(i.db.
		Where("candidate_id = ?", candidateID).
		Where("requirement_id = ?", requirementID))
}

func (i impl) LatestDefinedStage(candidateID, requirementID string) (*dbmodels.CandidateProgress, error) {
	return i.latest(i.db.
		Where("candidate_id = ?", candidateID).
		Where("requirement_id = ?", requirementID).
		Where("stage_id <> ?", dbmodels.PipelineStageID))
}

func (i impl) latest(tx *gorm.DB) (*dbmodels.CandidateProgress, error) {
	rec := dbmodels.CandidateProgress{}
	err := tx.
		Order("updated_at desc").
		Order("created_at desc").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) SetStatus(id string, status models.ProgressStatus) error {
	return i.db.
		Model(&dbmodels.CandidateProgress{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).
		Error
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.CandidateProgress, err error) {
	list = []dbmodels.CandidateProgress{}
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Order("updated_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCandidateRequirement(candidateID, requirementID string) (list []dbmodels.CandidateProgress, err error) {
	list = []dbmodels.CandidateProgress{}
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Where("requirement_id = ?", requirementID).
		Order("updated_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByRequirement(requirementID string) (list []dbmodels.CandidateProgress, err error) {
	list = []dbmodels.CandidateProgress{}
	err = i.db.
		Where("requirement_id = ?", requirementID).
		Order("updated_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListLatestPerCandidate returns the most recently updated row of every candidate.
func (i impl) ListLatestPerCandidate() (list []dbmodels.CandidateProgress, err error) {
	list = []dbmodels.CandidateProgress{}
	latest := i.db.
		Model(&dbmodels.CandidateProgress{}).
		Select("candidate_id, max(updated_at) as max_updated").
		Group("candidate_id")
	err = i.db.
		Table("candidate_progress cp").
		Select("cp.*").
		Joins("join (?) l on l.candidate_id = cp.candidate_id and l.max_updated = cp.updated_at", latest).
		Order("cp.updated_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return dedupByCandidate(list), nil
}

func dedupByCandidate(list []dbmodels.CandidateProgress) []dbmodels.CandidateProgress {
	seen := make(map[string]struct{}, len(list))
	result := make([]dbmodels.CandidateProgress, 0, len(list))
	for _, rec := range list {
		if _, ok := seen[rec.CandidateID]; ok {
			continue
		}
		seen[rec.CandidateID] = struct{}{}
		result = append(result, rec)
	}
	return result
}

func (i impl) DeleteByRequirement(requirementID string) error {
	return i.db.
		Where("requirement_id = ?", requirementID).
		Delete(&dbmodels.CandidateProgress{}).
		Error
}

func (i impl) DeleteByCandidate(candidateID string) error {
	return i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.CandidateProgress{}).
		Error
}
