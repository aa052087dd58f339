package db

import (
	"strings"

	"ats-backend/config"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitPreload() {
	AddAdmin(DB, config.Conf.Admin.Name, config.Conf.Admin.Email, config.Conf.Admin.Password)
}

// AddAdmin creates the first ADMIN user unless a user with the e-mail exists.
func AddAdmin(conn *gorm.DB, name, email, password string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		log.Warn("admin user not added, ADMIN_EMAIL is empty")
		return
	}
	logger := log.WithField("email", email)
	var count int64
	if err := conn.Model(&dbmodels.User{}).Where("lower(email) = ?", email).Count(&count).Error; err != nil {
		logger.WithError(err).Error("unable to add admin user")
		return
	}
	if count != 0 {
		return
	}
	rec := dbmodels.User{
		Name:   name,
		Email:  email,
		Role:   models.UserRoleAdmin,
		Status: models.UserStatusActive,
	}
	if password != "" {
		hash, err := authutils.HashPassword(password)
		if err != nil {
			logger.WithError(err).Error("unable to add admin user")
			return
		}
		rec.PasswordHash = hash
	}
	if err := conn.Create(&rec).Error; err != nil {
		logger.WithError(err).Error("unable to add admin user")
		return
	}
	logger.Info("admin user added")
}
