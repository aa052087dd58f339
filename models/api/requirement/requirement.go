package requirementapimodels

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/lib/utils/helpers"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

const (
	titleMaxLen    = 255
	locationMaxLen = 100
	skillsMaxLen   = 255
	ctcMaxLen      = 100
	categoryMaxLen = 50
)

var experienceRe = regexp.MustCompile(`\d+(\.\d+)?`)

type RequirementData struct {
	ClientID           string                   `json:"client_id"`           // Client ID
	Title              string                   `json:"title"`               // Job title
	Description        string                   `json:"description"`         // Free text description
	Location           string                   `json:"location"`            // Location
	SkillsRequired     string                   `json:"skills_required"`     // Comma separated skills
	ExperienceRequired interface{}              `json:"experience_required"` // Years, number or free text like "3-5 years"
	CtcRange           string                   `json:"ctc_range"`           // Compensation range
	NoOfRounds         int                      `json:"no_of_rounds"`        // Number of interview rounds, 1 when omitted
	StageNames         []string                 `json:"stage_names"`         // Optional custom stage names
	Category           string                   `json:"category"`            // Category, IT when omitted
	Status             models.RequirementStatus `json:"status"`              // OPEN | ON_HOLD | CLOSED
}

func (r RequirementData) Validate() error {
	missing := []string{}
	if strings.TrimSpace(r.ClientID) == "" {
		missing = append(missing, "client_id")
	}
	if strings.TrimSpace(r.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(r.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) != 0 {
		return apperrors.NewValidation("missing required fields: %s", strings.Join(missing, ", "))
	}
	if r.Status != "" && !r.Status.IsValid() {
		return apperrors.NewValidation("invalid requirement status: %s", r.Status)
	}
	if r.NoOfRounds > 20 {
		return apperrors.NewValidation("no_of_rounds must not exceed 20")
	}
	return nil
}

// Sanitized trims text fields and cuts them to the column sizes.
func (r RequirementData) Sanitized() RequirementData {
	r.ClientID = strings.TrimSpace(r.ClientID)
	r.Title = helpers.Truncate(r.Title, titleMaxLen)
	r.Description = strings.TrimSpace(r.Description)
	r.Location = helpers.Truncate(r.Location, locationMaxLen)
	r.SkillsRequired = helpers.Truncate(r.SkillsRequired, skillsMaxLen)
	r.CtcRange = helpers.Truncate(r.CtcRange, ctcMaxLen)
	r.Category = helpers.Truncate(r.Category, categoryMaxLen)
	if r.Category == "" {
		r.Category = models.DefaultRequirementCategory
	}
	if r.Status == "" {
		r.Status = models.RequirementStatusOpen
	}
	return r
}

func (r RequirementData) GetExperience() float64 {
	return ParseExperience(r.ExperienceRequired)
}

// ParseExperience takes a number as is and the first number found in text.
func ParseExperience(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case nil:
		return 0
	}
	match := experienceRe.FindString(fmt.Sprint(value))
	if match == "" {
		return 0
	}
	result, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return result
}

type RequirementFilter struct {
	ClientID string `query:"client_id"` // Filter by client
	Status   string `query:"status"`    // Filter by status
	Search   string `query:"search"`    // Title or location substring
}

type RequirementView struct {
	ID                 string                   `json:"id"`
	ClientID           string                   `json:"client_id"`
	ClientName         string                   `json:"client_name"`
	Title              string                   `json:"title"`
	Description        string                   `json:"description"`
	Location           string                   `json:"location"`
	SkillsRequired     string                   `json:"skills_required"`
	ExperienceRequired float64                  `json:"experience_required"`
	CtcRange           string                   `json:"ctc_range"`
	NoOfRounds         int                      `json:"no_of_rounds"`
	Category           string                   `json:"category"`
	Status             models.RequirementStatus `json:"status"`
	CreatedBy          string                   `json:"created_by"`
	CreatedAt          time.Time                `json:"created_at"`
}

func RequirementConvert(rec dbmodels.Requirement) RequirementView {
	result := RequirementView{
		ID:                 rec.ID,
		ClientID:           rec.ClientID,
		Title:              rec.Title,
		Description:        rec.Description,
		Location:           rec.Location,
		SkillsRequired:     rec.SkillsRequired,
		ExperienceRequired: rec.ExperienceRequired,
		CtcRange:           rec.CtcRange,
		NoOfRounds:         rec.NoOfRounds,
		Category:           rec.GetCategory(),
		Status:             rec.Status,
		CreatedBy:          rec.CreatedBy,
		CreatedAt:          rec.CreatedAt,
	}
	if rec.Client != nil {
		result.ClientName = rec.Client.Name
	}
	return result
}

func RequirementListConvert(list []dbmodels.Requirement) []RequirementView {
	result := make([]RequirementView, 0, len(list))
	for _, rec := range list {
		result = append(result, RequirementConvert(rec))
	}
	return result
}

type RecentRequirementView struct {
	ID     string                   `json:"id"`
	Title  string                   `json:"title"`
	Status models.RequirementStatus `json:"status"`
	Date   string                   `json:"date"` // 2006-01-02 15:04:05
}

func RecentRequirementConvert(rec dbmodels.Requirement) RecentRequirementView {
	return RecentRequirementView{
		ID:     rec.ID,
		Title:  rec.Title,
		Status: rec.Status,
		Date:   rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
