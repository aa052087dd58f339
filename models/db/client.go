package dbmodels

import "ats-backend/models"

type Client struct {
	BaseModel
	Name          string              `gorm:"type:varchar(255);not null"`
	ContactPerson string              `gorm:"type:varchar(255)"`
	Email         string              `gorm:"type:varchar(255)"`
	Phone         string              `gorm:"type:varchar(50)"`
	Address       string              `gorm:"type:text"`
	Status        models.ClientStatus `gorm:"type:varchar(20);default:ACTIVE"`
}
