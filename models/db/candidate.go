package dbmodels

type Candidate struct {
	BaseModel
	Name              string  `gorm:"type:varchar(255);not null"`
	Email             string  `gorm:"type:varchar(255);index"`
	Phone             string  `gorm:"type:varchar(20)"`
	Skills            string  `gorm:"type:text"`
	Education         string  `gorm:"type:text"`
	Experience        string  `gorm:"type:text"`
	Ctc               string  `gorm:"type:varchar(50)"`
	Ectc              string  `gorm:"type:varchar(50)"`
	Source            string  `gorm:"type:varchar(50)"`
	ResumeFileName    string  `gorm:"type:varchar(255)"`
	ResumeContentType string  `gorm:"type:varchar(100)"`
	ResumeKey         string  `gorm:"type:varchar(255)"` // object key in the resume bucket
	CreatedBy         *string `gorm:"type:varchar(36)"`
}

func (c Candidate) HasResume() bool {
	return c.ResumeKey != ""
}
