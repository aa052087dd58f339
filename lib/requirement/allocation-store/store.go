package allocationstore

import (
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.RequirementAllocation) (id string, err error)
	Find(requirementID, recruiterID string) (*dbmodels.RequirementAllocation, error)
	ListByRequirement(requirementID string) (list []dbmodels.RequirementAllocation, err error)
	ListByRecruiter(recruiterID string) (list []dbmodels.RequirementAllocation, err error)
	ListAll() (list []dbmodels.RequirementAllocation, err error)
	RequirementIDsByRecruiter(recruiterID string) (ids []string, err error)
	DeleteByRequirement(requirementID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RequirementAllocation) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Find(requirementID, recruiterID string) (*dbmodels.RequirementAllocation, error) {
	rec := dbmodels.RequirementAllocation{}
	err := i.db.
		Where("requirement_id = ?", requirementID).
		Where("recruiter_id = ?", recruiterID).
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

func (i impl) ListByRequirement(requirementID string) (list []dbmodels.RequirementAllocation, err error) {
	return i.list(i.db.Where("requirement_id = ?", requirementID))
}

func (i impl) ListByRecruiter(recruiterID string) (list []dbmodels.RequirementAllocation, err error) {
	return i.list(i.db.Where("recruiter_id = ?", recruiterID))
}

func (i impl) ListAll() (list []dbmodels.RequirementAllocation, err error) {
	return i.list(i.db)
}

func (i impl) list(tx *gorm.DB) (list []dbmodels.RequirementAllocation, err error) {
	list = []dbmodels.RequirementAllocation{}
	err = tx.
		Preload("Requirement.Client").
		Preload("Recruiter").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) RequirementIDsByRecruiter(recruiterID string) (ids []string, err error) {
	ids = []string{}
	err = i.db.
		Model(&dbmodels.RequirementAllocation{}).
		Where("recruiter_id = ?", recruiterID).
		Distinct().
		Pluck("requirement_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i impl) DeleteByRequirement(requirementID string) error {
	return i.db.
		Where("requirement_id = ?", requirementID).
		Delete(&dbmodels.RequirementAllocation{}).
		Error
}
