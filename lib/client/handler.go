package client

import (
	"strings"

	"ats-backend/db"
	clientstore "ats-backend/lib/client/store"
	requirementstore "ats-backend/lib/requirement/store"
	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/models"
	authapimodels "ats-backend/models/api/auth"
	clientapimodels "ats-backend/models/api/client"
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data clientapimodels.ClientData) (id string, err error)
	Update(id string, data clientapimodels.ClientData) (item clientapimodels.ClientView, err error)
	GetByID(id string) (item clientapimodels.ClientView, err error)
	List(user authapimodels.UserInfo) (list []clientapimodels.ClientView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(conn *gorm.DB) Provider {
	return impl{
		store:            clientstore.NewInstance(conn),
		requirementStore: requirementstore.NewInstance(conn),
	}
}

type impl struct {
	store            clientstore.Provider
	requirementStore requirementstore.Provider
}

func (i impl) Create(data clientapimodels.ClientData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(dbmodels.Client{
		Name:          strings.TrimSpace(data.Name),
		ContactPerson: data.ContactPerson,
		Email:         strings.TrimSpace(data.Email),
		Phone:         data.Phone,
		Address:       data.Address,
		Status:        data.GetStatus(),
	})
	if err != nil {
		return "", errors.Wrap(err, "unable to create client")
	}
	log.WithField("client_id", id).Info("client created")
	return id, nil
}

func (i impl) Update(id string, data clientapimodels.ClientData) (item clientapimodels.ClientView, err error) {
	if err = data.Validate(); err != nil {
		return item, err
	}
	if _, err = i.getClient(id); err != nil {
		return item, err
	}
	updMap := map[string]interface{}{
		"name":           strings.TrimSpace(data.Name),
		"contact_person": data.ContactPerson,
		"email":          strings.TrimSpace(data.Email),
		"phone":          data.Phone,
		"address":        data.Address,
		"status":         data.GetStatus(),
	}
	if err = i.store.Update(id, updMap); err != nil {
		return item, errors.Wrap(err, "unable to update client")
	}
	return i.GetByID(id)
}

func (i impl) GetByID(id string) (item clientapimodels.ClientView, err error) {
	rec, err := i.getClient(id)
	if err != nil {
		return item, err
	}
	return clientapimodels.ClientConvert(*rec), nil
}

func (i impl) List(user authapimodels.UserInfo) (list []clientapimodels.ClientView, err error) {
	if user.Role == models.UserRoleClient {
		list = []clientapimodels.ClientView{}
		if user.ClientID == "" {
			return list, nil
		}
		rec, err := i.store.GetByID(user.ClientID)
		if err != nil {
			return nil, errors.Wrap(err, "unable to get client")
		}
		if rec != nil {
			list = append(list, clientapimodels.ClientConvert(*rec))
		}
		return list, nil
	}
	recs, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list clients")
	}
	list = make([]clientapimodels.ClientView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, clientapimodels.ClientConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	if _, err := i.getClient(id); err != nil {
		return err
	}
	count, err := i.requirementStore.CountByClient(id)
	if err != nil {
		return errors.Wrap(err, "unable to count client requirements")
	}
	if count != 0 {
		return apperrors.NewConflict("client cannot be deleted because it is used in %d requirement(s)", count)
	}
	if err = i.store.Delete(id); err != nil {
		return errors.Wrap(err, "unable to delete client")
	}
	log.WithField("client_id", id).Info("client deleted")
	return nil
}

func (i impl) getClient(id string) (*dbmodels.Client, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get client")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("client", id)
	}
	return rec, nil
}
