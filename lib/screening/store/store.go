package screeningstore

import (
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.CandidateScreening) (id string, err error)
	Latest(candidateID, requirementID string) (*dbmodels.CandidateScreening, error)
	ListByCandidate(candidateID string) (list []dbmodels.CandidateScreening, err error)
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

func (i impl) Create(rec dbmodels.CandidateScreening) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Latest(candidateID, requirementID string) (*dbmodels.CandidateScreening, error) {
	rec := dbmodels.CandidateScreening{}
	err := i.db.
		Where("candidate_id = ?", candidateID).
		Where("requirement_id = ?", requirementID).
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

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.CandidateScreening, err error) {
	list = []dbmodels.CandidateScreening{}
	err = i.db.
		Where("candidate_id = ?", candidateID).
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
		Delete(&dbmodels.CandidateScreening{}).
		Error
}

func (i impl) DeleteByCandidate(candidateID string) error {
	return i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.CandidateScreening{}).
		Error
}
