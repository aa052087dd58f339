package dbmodels

import (
	"ats-backend/models"
	"time"
)

type User struct {
	BaseModel
	Name         string            `gorm:"type:varchar(100);not null"`
	Email        string            `gorm:"type:varchar(150);uniqueIndex;not null"`
	PasswordHash string            `gorm:"type:varchar(255)"`
	Role         models.UserRole   `gorm:"type:varchar(50);index"`
	Phone        string            `gorm:"type:varchar(20)"`
	Status       models.UserStatus `gorm:"type:varchar(20);default:ACTIVE"`
	ClientID     *string           `gorm:"type:varchar(36)"`
	LastLogin    *time.Time
}

// IsSignedUp reports whether the user has already set a password.
func (u User) IsSignedUp() bool {
	return u.PasswordHash != ""
}
