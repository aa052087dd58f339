package dbmodels

import (
	"ats-backend/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PipelineStageID marks a progress row that is not tied to a defined requirement stage.
const PipelineStageID = ""

type CandidateProgress struct {
	ID             string                `gorm:"primaryKey;type:varchar(36)"`
	CandidateID    string                `gorm:"type:varchar(36);not null;uniqueIndex:uniq_progress_stage"`
	RequirementID  string                `gorm:"type:varchar(36);not null;uniqueIndex:uniq_progress_stage;index"`
	StageID        string                `gorm:"type:varchar(36);not null;uniqueIndex:uniq_progress_stage"`
	StageName      string                `gorm:"type:varchar(255)"`
	Status         models.ProgressStatus `gorm:"type:varchar(20);not null;default:PENDING"`
	Decision       models.Decision       `gorm:"type:varchar(20);not null;default:NONE"`
	ManualDecision models.Decision       `gorm:"type:varchar(20);not null;default:NONE"`
	Category       string                `gorm:"type:varchar(50)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time `gorm:"index"`
}

func (p *CandidateProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (CandidateProgress) TableName() string {
	return "candidate_progress"
}

func (p CandidateProgress) IsPipelineLevel() bool {
	return p.StageID == PipelineStageID
}

type Interview struct {
	BaseModel
	CandidateID   string `gorm:"type:varchar(36);not null;index"`
	RequirementID string `gorm:"type:varchar(36);not null;index"`
	Category      string `gorm:"type:varchar(50)"`
	Stage         string `gorm:"type:varchar(255)"`
	Date          string `gorm:"type:varchar(20)"`
	Time          string `gorm:"type:varchar(20)"`
	Duration      int
	Mode          string                 `gorm:"type:varchar(50)"`
	Location      string                 `gorm:"type:varchar(255)"`
	Interviewer   string                 `gorm:"type:varchar(255)"`
	Notes         string                 `gorm:"type:text"`
	Status        models.InterviewStatus `gorm:"type:varchar(20);default:SCHEDULED"`
}

type CandidateScreening struct {
	BaseModel
	CandidateID   string `gorm:"type:varchar(36);not null;index"`
	RequirementID string `gorm:"type:varchar(36);not null;index"`
	AiScore       float64
	AiRationale   StringArray
	Recommend     models.Recommendation `gorm:"type:varchar(32)"`
	RedFlags      StringArray
	ModelVersion  string                 `gorm:"type:varchar(50)"`
	Status        models.ScreeningStatus `gorm:"type:varchar(20)"`
	Error         string                 `gorm:"type:text"`
}
