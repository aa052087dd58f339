package stagestore

import (
	dbmodels "ats-backend/models/db"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	CreateRounds(requirementID string, noOfRounds int, stageNames []string) (list []dbmodels.RequirementStage, err error)
	GetByID(requirementID, id string) (*dbmodels.RequirementStage, error)
	FindByName(requirementID, name string) (*dbmodels.RequirementStage, error)
	List(requirementID string) (list []dbmodels.RequirementStage, err error)
	ListByRequirements(requirementIDs []string) (list []dbmodels.RequirementStage, err error)
	Count(requirementID string) (int64, error)
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

// StageNames returns the names of rounds 1..n, "Round {i}" where no custom name is given.
func StageNames(noOfRounds int, stageNames []string) []string {
	if noOfRounds <= 0 {
		noOfRounds = 1
	}
	result := make([]string, 0, noOfRounds)
	for k := 1; k <= noOfRounds; k++ {
		name := ""
		if k <= len(stageNames) {
			name = strings.TrimSpace(stageNames[k-1])
		}
		if name == "" {
			name = fmt.Sprintf("Round %d", k)
		}
		result = append(result, name)
	}
	return result
}

func (i impl) CreateRounds(requirementID string, noOfRounds int, stageNames []string) (list []dbmodels.RequirementStage, err error) {
	names := StageNames(noOfRounds, stageNames)
	list = make([]dbmodels.RequirementStage, 0, len(names))
	for k, name := range names {
		list = append(list, dbmodels.RequirementStage{
			RequirementID: requirementID,
			StageOrder:    k + 1,
			StageName:     name,
			IsMandatory:   true,
		})
	}
	err = i.db.
		Create(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "unable to create requirement stages")
	}
	return list, nil
}

func (i impl) GetByID(requirementID, id string) (*dbmodels.RequirementStage, error) {
	rec := dbmodels.RequirementStage{}
	err := i.db.
		Where("id = ?", id).
		Where("requirement_id = ?", requirementID).
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

func (i impl) FindByName(requirementID, name string) (*dbmodels.RequirementStage, error) {
	rec := dbmodels.RequirementStage{}
	err := i.db.
		Where("requirement_id = ?", requirementID).
		Where("lower(stage_name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Order("stage_order").
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

func (i impl) List(requirementID string) (list []dbmodels.RequirementStage, err error) {
	list = []dbmodels.RequirementStage{}
	err = i.db.
		Where("requirement_id = ?", requirementID).
		Order("stage_order asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByRequirements(requirementIDs []string) (list []dbmodels.RequirementStage, err error) {
	list = []dbmodels.RequirementStage{}
	if len(requirementIDs) == 0 {
		return list, nil
	}
	err = i.db.
		Where("requirement_id in (?)", requirementIDs).
		Order("requirement_id, stage_order asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count(requirementID string) (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.RequirementStage{}).
		Where("requirement_id = ?", requirementID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) DeleteByRequirement(requirementID string) error {
	return i.db.
		Where("requirement_id = ?", requirementID).
		Delete(&dbmodels.RequirementStage{}).
		Error
}
