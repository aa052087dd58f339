package auth

import (
	"strings"
	"time"

	"ats-backend/db"
	usersstore "ats-backend/lib/users/store"
	apperrors "ats-backend/lib/utils/app-errors"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
	authapimodels "ats-backend/models/api/auth"
	usersapimodels "ats-backend/models/api/users"
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Login(request authapimodels.LoginRequest) (resp authapimodels.JWTResponse, err error)
	Signup(request authapimodels.SignupRequest) (resp authapimodels.JWTResponse, err error)
	Me(user authapimodels.UserInfo) (item usersapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(conn *gorm.DB) Provider {
	return impl{
		store: usersstore.NewInstance(conn),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Login(request authapimodels.LoginRequest) (resp authapimodels.JWTResponse, err error) {
	if err = request.Validate(); err != nil {
		return resp, err
	}
	rec, err := i.store.FindByEmail(request.Email)
	if err != nil {
		return resp, errors.Wrap(err, "unable to find user")
	}
	if rec == nil || !rec.IsSignedUp() {
		return resp, apperrors.NewUnauthorized("invalid e-mail or password")
	}
	if !authutils.CheckPassword(rec.PasswordHash, request.Password) {
		log.WithField("user_id", rec.ID).Warn("login failed: wrong password")
		return resp, apperrors.NewUnauthorized("invalid e-mail or password")
	}
	if rec.Status == models.UserStatusInactive {
		return resp, apperrors.NewUnauthorized("user is inactive")
	}
	now := time.Now()
	if err = i.store.Update(rec.ID, map[string]interface{}{"last_login": now}); err != nil {
		log.WithError(err).WithField("user_id", rec.ID).Warn("last login not saved")
	}
	return i.issueToken(*rec)
}

// Signup sets the password of a user created by an administrator.
func (i impl) Signup(request authapimodels.SignupRequest) (resp authapimodels.JWTResponse, err error) {
	if err = request.Validate(); err != nil {
		return resp, err
	}
	rec, err := i.store.FindByEmail(request.Email)
	if err != nil {
		return resp, errors.Wrap(err, "unable to find user")
	}
	if rec == nil {
		return resp, apperrors.NewForbidden("signup is allowed only for users created by an administrator")
	}
	if rec.IsSignedUp() {
		return resp, apperrors.NewConflict("user already signed up, please log in")
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return resp, err
	}
	updMap := map[string]interface{}{
		"password_hash": hash,
		"status":        models.UserStatusActive,
	}
	if name := strings.TrimSpace(request.Name); name != "" {
		updMap["name"] = name
		rec.Name = name
	}
	if err = i.store.Update(rec.ID, updMap); err != nil {
		return resp, errors.Wrap(err, "unable to save password")
	}
	log.WithField("user_id", rec.ID).Info("user signed up")
	return i.issueToken(*rec)
}

func (i impl) Me(user authapimodels.UserInfo) (item usersapimodels.UserView, err error) {
	rec, err := i.store.GetByID(user.ID)
	if err != nil {
		return item, errors.Wrap(err, "unable to get user")
	}
	if rec == nil {
		return item, apperrors.NewUnauthorized("user not found")
	}
	return usersapimodels.UserConvert(*rec), nil
}

func (i impl) issueToken(rec dbmodels.User) (resp authapimodels.JWTResponse, err error) {
	clientID := ""
	if rec.ClientID != nil {
		clientID = *rec.ClientID
	}
	token, err := authutils.GetToken(rec.ID, rec.Name, rec.Role, clientID)
	if err != nil {
		return resp, errors.Wrap(err, "unable to sign token")
	}
	return authapimodels.JWTResponse{
		Token:    token,
		UserID:   rec.ID,
		Name:     rec.Name,
		Role:     rec.Role,
		ClientID: clientID,
	}, nil
}
