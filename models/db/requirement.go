package dbmodels

import "ats-backend/models"

type Requirement struct {
	BaseModel
	ClientID           string  `gorm:"type:varchar(36);index"`
	Client             *Client `gorm:"foreignKey:ClientID"`
	Title              string  `gorm:"type:varchar(255);index"`
	Description        string  `gorm:"type:text"`
	Location           string  `gorm:"type:varchar(100)"`
	SkillsRequired     string  `gorm:"type:varchar(255)"`
	ExperienceRequired float64
	CtcRange           string                   `gorm:"type:varchar(100)"`
	NoOfRounds         int                      `gorm:"default:1"`
	Category           string                   `gorm:"type:varchar(50)"`
	Status             models.RequirementStatus `gorm:"type:varchar(50);default:OPEN"`
	CreatedBy          string                   `gorm:"type:varchar(100)"`
}

func (r Requirement) GetCategory() string {
	if r.Category == "" {
		return models.DefaultRequirementCategory
	}
	return r.Category
}

type RequirementStage struct {
	BaseModel
	RequirementID string `gorm:"type:varchar(36);not null;uniqueIndex:uniq_requirement_stage_order"`
	StageOrder    int    `gorm:"not null;uniqueIndex:uniq_requirement_stage_order"`
	StageName     string `gorm:"type:varchar(255)"`
	IsMandatory   bool   `gorm:"default:true"`
}

type RequirementAllocation struct {
	BaseModel
	RequirementID string                  `gorm:"type:varchar(36);not null;index"`
	Requirement   *Requirement            `gorm:"foreignKey:RequirementID"`
	RecruiterID   string                  `gorm:"type:varchar(36);not null;index"`
	Recruiter     *User                   `gorm:"foreignKey:RecruiterID"`
	AssignedBy    string                  `gorm:"type:varchar(36)"`
	Status        models.AllocationStatus `gorm:"type:varchar(20);default:ASSIGNED"`
}
