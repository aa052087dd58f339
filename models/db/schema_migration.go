package dbmodels

import "time"

type SchemaMigration struct {
	Version   int    `gorm:"primaryKey;autoIncrement:false"`
	Name      string `gorm:"type:varchar(255)"`
	AppliedAt time.Time
}
