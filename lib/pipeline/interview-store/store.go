package interviewstore

import (
	"ats-backend/models"
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	GetByID(id string) (*dbmodels.Interview, error)
	Update(id string, updMap map[string]interface{}) error
	List(filter Filter) (list []dbmodels.Interview, err error)
	DeleteByRequirement(requirementID string) error
	DeleteByCandidate(candidateID string) error
}

type Filter struct {
	CandidateID      string
	RequirementID    string
	Stage            string
	Status           models.InterviewStatus
	IncludeCancelled bool
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	if rec.Status == "" {
		rec.Status = models.InterviewStatusScheduled
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) List(filter Filter) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	tx := i.db.Model(&dbmodels.Interview{})
	if filter.CandidateID != "" {
		tx = tx.Where("candidate_id = ?", filter.CandidateID)
	}
	if filter.RequirementID != "" {
		tx = tx.Where("requirement_id = ?", filter.RequirementID)
	}
	if filter.Stage != "" {
		tx = tx.Where("stage = ?", filter.Stage)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	} else if !filter.IncludeCancelled {
		tx = tx.Where("status <> ?", models.InterviewStatusCancelled)
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteByRequirement(requirementID string) error {
	return i.db.
		Where("requirement_id = ?", requirementID).
		Delete(&dbmodels.Interview{}).
		Error
}

func (i impl) DeleteByCandidate(candidateID string) error {
	return i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.Interview{}).
		Error
}
