package requirementstore

import (
	dbmodels "ats-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Requirement) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Requirement, error)
	Resolve(ref string) (*dbmodels.Requirement, error)
	List(filter Filter) (list []dbmodels.Requirement, err error)
	ListByIDs(ids []string) (list []dbmodels.Requirement, err error)
	CountByClient(clientID string) (int64, error)
	Delete(id string) error
}

type Filter struct {
	ClientID    string
	IDs         []string
	Status      string
	Search      string
	Limit       int
	OnlyIDsUsed bool // restrict to IDs even when the list is empty
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Requirement) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
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
	return i.db.
		Model(&dbmodels.Requirement{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.Requirement, error) {
	rec := dbmodels.Requirement{}
	err := i.db.
		Preload("Client").
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

// Resolve finds a requirement by id, then by exact case-insensitive title, then by
// "title location" substring. Among several title matches the newest wins.
func (i impl) Resolve(ref string) (*dbmodels.Requirement, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}
	rec, err := i.GetByID(ref)
	if err != nil || rec != nil {
		return rec, err
	}
	lowerRef := strings.ToLower(ref)
	rec, err = i.first(i.db.Where("lower(title) = ?", lowerRef))
	if err != nil || rec != nil {
		return rec, err
	}
	return i.first(i.db.Where("lower(title || ' ' || coalesce(location, '')) like ?", "%"+lowerRef+"%"))
}

func (i impl) first(tx *gorm.DB) (*dbmodels.Requirement, error) {
	rec := dbmodels.Requirement{}
	err := tx.
		Preload("Client").
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

func (i impl) List(filter Filter) (list []dbmodels.Requirement, err error) {
	list = []dbmodels.Requirement{}
	tx := i.db.
		Model(&dbmodels.Requirement{}).
		Preload("Client")
	if filter.ClientID != "" {
		tx = tx.Where("client_id = ?", filter.ClientID)
	}
	if filter.OnlyIDsUsed || len(filter.IDs) != 0 {
		if len(filter.IDs) == 0 {
			return list, nil
		}
		tx = tx.Where("id in (?)", filter.IDs)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		tx = tx.Where("lower(title) like ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
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

func (i impl) ListByIDs(ids []string) (list []dbmodels.Requirement, err error) {
	return i.List(Filter{IDs: ids, OnlyIDsUsed: true})
}

func (i impl) CountByClient(clientID string) (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Requirement{}).
		Where("client_id = ?", clientID).
		Count(&count).
		Error
	return count, err
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Requirement{}).
		Error
}
