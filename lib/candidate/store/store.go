package candidatestore

import (
	"strings"

	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Candidate, error)
	FindByEmail(email string) (*dbmodels.Candidate, error)
	List(filter Filter) (list []dbmodels.Candidate, rowCount int64, err error)
	ListByIDs(ids []string) (list []dbmodels.Candidate, err error)
	Count() (int64, error)
	Delete(id string) error
}

type Filter struct {
	Search    string // name, e-mail or skills substring
	CreatedBy string
	Offset    int
	Limit     int // zero means no limit
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("candidate not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
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

func (i impl) FindByEmail(email string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
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

func (i impl) List(filter Filter) (list []dbmodels.Candidate, rowCount int64, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.Model(&dbmodels.Candidate{})
	if filter.CreatedBy != "" {
		tx = tx.Where("created_by = ?", filter.CreatedBy)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("lower(name) like ? or lower(email) like ? or lower(skills) like ?", like, like, like)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	if filter.Limit > 0 {
		tx = tx.Offset(filter.Offset).Limit(filter.Limit)
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListByIDs(ids []string) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	if len(ids) == 0 {
		return list, nil
	}
	err = i.db.
		Where("id in (?)", ids).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count() (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Count(&count).
		Error
	return count, err
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Candidate{}).
		Error
}
