package users

import (
	"strings"

	"ats-backend/db"
	candidatestore "ats-backend/lib/candidate/store"
	clientstore "ats-backend/lib/client/store"
	"ats-backend/lib/requirement"
	usersstore "ats-backend/lib/users/store"
	apperrors "ats-backend/lib/utils/app-errors"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
	candidateapimodels "ats-backend/models/api/candidate"
	usersapimodels "ats-backend/models/api/users"
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var allRoles = []models.UserRole{
	models.UserRoleAdmin,
	models.UserRoleDeliveryManager,
	models.UserRoleTeamLead,
	models.UserRoleRecruiter,
	models.UserRoleClient,
	models.UserRoleCandidate,
}

type Provider interface {
	Create(data usersapimodels.UserData) (id string, err error)
	Update(id string, data usersapimodels.UserData) error
	UpdateStatus(id string, data usersapimodels.StatusUpdate) error
	GetByID(id string) (item usersapimodels.UserView, err error)
	Details(id string) (item usersapimodels.UserDetails, err error)
	List() (list []usersapimodels.UserView, err error)
	Recruiters() (list []usersapimodels.RecruiterView, err error)
	Roles() []usersapimodels.RoleView
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, requirement.Instance)
}

func NewInstance(conn *gorm.DB, requirementProvider requirement.Provider) Provider {
	return impl{
		store:          usersstore.NewInstance(conn),
		clientStore:    clientstore.NewInstance(conn),
		candidateStore: candidatestore.NewInstance(conn),
		requirement:    requirementProvider,
	}
}

type impl struct {
	store          usersstore.Provider
	clientStore    clientstore.Provider
	candidateStore candidatestore.Provider
	requirement    requirement.Provider
}

func (i impl) Create(data usersapimodels.UserData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	exist, err := i.store.FindByEmail(data.Email)
	if err != nil {
		return "", errors.Wrap(err, "unable to check e-mail")
	}
	if exist != nil {
		return "", apperrors.NewConflict("e-mail already exists")
	}
	rec := dbmodels.User{
		Name:   strings.TrimSpace(data.Name),
		Email:  data.Email,
		Phone:  strings.TrimSpace(data.Phone),
		Role:   data.GetRole(),
		Status: models.UserStatusActive,
	}
	if rec.ClientID, err = i.clientRef(rec.Role, data.ClientID); err != nil {
		return "", err
	}
	if data.Password != "" {
		if rec.PasswordHash, err = authutils.HashPassword(data.Password); err != nil {
			return "", err
		}
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "unable to create user")
	}
	log.
		WithField("user_id", id).
		WithField("role", rec.Role).
		Info("user created")
	return id, nil
}

func (i impl) Update(id string, data usersapimodels.UserData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	if _, err := i.getUser(id); err != nil {
		return err
	}
	exist, err := i.store.FindByEmail(data.Email)
	if err != nil {
		return errors.Wrap(err, "unable to check e-mail")
	}
	if exist != nil && exist.ID != id {
		return apperrors.NewConflict("e-mail already exists")
	}
	role := data.GetRole()
	clientID, err := i.clientRef(role, data.ClientID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":      strings.TrimSpace(data.Name),
		"email":     strings.ToLower(strings.TrimSpace(data.Email)),
		"phone":     strings.TrimSpace(data.Phone),
		"role":      role,
		"client_id": clientID,
	}
	if data.Password != "" {
		hash, err := authutils.HashPassword(data.Password)
		if err != nil {
			return err
		}
		updMap["password_hash"] = hash
	}
	if err = i.store.Update(id, updMap); err != nil {
		return errors.Wrap(err, "unable to update user")
	}
	return nil
}

func (i impl) UpdateStatus(id string, data usersapimodels.StatusUpdate) error {
	if err := data.Validate(); err != nil {
		return err
	}
	if _, err := i.getUser(id); err != nil {
		return err
	}
	if err := i.store.Update(id, map[string]interface{}{"status": data.Status}); err != nil {
		return errors.Wrap(err, "unable to update user status")
	}
	log.
		WithField("user_id", id).
		WithField("status", data.Status).
		Info("user status updated")
	return nil
}

func (i impl) GetByID(id string) (item usersapimodels.UserView, err error) {
	rec, err := i.getUser(id)
	if err != nil {
		return item, err
	}
	return usersapimodels.UserConvert(*rec), nil
}

func (i impl) Details(id string) (item usersapimodels.UserDetails, err error) {
	rec, err := i.getUser(id)
	if err != nil {
		return item, err
	}
	item.User = usersapimodels.UserConvert(*rec)
	item.Assignments, err = i.requirement.RecruiterRequirements(id)
	if err != nil {
		return item, err
	}
	candidates, _, err := i.candidateStore.List(candidatestore.Filter{CreatedBy: id})
	if err != nil {
		return item, errors.Wrap(err, "unable to list user candidates")
	}
	item.Candidates = candidateapimodels.CandidateListConvert(candidates)
	return item, nil
}

func (i impl) List() (list []usersapimodels.UserView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list users")
	}
	list = make([]usersapimodels.UserView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, usersapimodels.UserConvert(rec))
	}
	return list, nil
}

func (i impl) Recruiters() (list []usersapimodels.RecruiterView, err error) {
	recs, err := i.store.List(models.UserRoleRecruiter, models.UserRoleTeamLead)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list recruiters")
	}
	list = make([]usersapimodels.RecruiterView, 0, len(recs))
	for _, rec := range recs {
		if rec.Status == models.UserStatusInactive {
			continue
		}
		list = append(list, usersapimodels.RecruiterView{ID: rec.ID, Name: rec.Name, Role: rec.Role})
	}
	return list, nil
}

func (i impl) Roles() []usersapimodels.RoleView {
	result := make([]usersapimodels.RoleView, 0, len(allRoles))
	for _, role := range allRoles {
		result = append(result, usersapimodels.RoleView{Role: role, Name: role.ToHuman()})
	}
	return result
}

func (i impl) Delete(id string) error {
	if _, err := i.getUser(id); err != nil {
		return err
	}
	if err := i.store.Delete(id); err != nil {
		return errors.Wrap(err, "unable to delete user")
	}
	log.WithField("user_id", id).Info("user deleted")
	return nil
}

func (i impl) getUser(id string) (*dbmodels.User, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get user")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("user", id)
	}
	return rec, nil
}

func (i impl) clientRef(role models.UserRole, clientID string) (*string, error) {
	if role != models.UserRoleClient {
		return nil, nil
	}
	rec, err := i.clientStore.GetByID(clientID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get client")
	}
	if rec == nil {
		return nil, apperrors.NewValidation("invalid client_id: %s", clientID)
	}
	return &rec.ID, nil
}
