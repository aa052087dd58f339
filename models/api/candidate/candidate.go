package candidateapimodels

import (
	"net/mail"
	"strings"
	"time"

	apperrors "ats-backend/lib/utils/app-errors"
	apimodels "ats-backend/models/api"
	dbmodels "ats-backend/models/db"
)

type CandidateData struct {
	Name       string `json:"name" form:"name"`             // Full name
	Email      string `json:"email" form:"email"`           // E-mail
	Phone      string `json:"phone" form:"phone"`           // Phone
	Skills     string `json:"skills" form:"skills"`         // Skills, free text
	Education  string `json:"education" form:"education"`   // Education, free text
	Experience string `json:"experience" form:"experience"` // Experience, free text
	Ctc        string `json:"ctc" form:"ctc"`               // Current compensation
	Ectc       string `json:"ectc" form:"ectc"`             // Expected compensation
	Source     string `json:"source" form:"source"`         // Sourcing channel
}

func (c CandidateData) Validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" {
		return apperrors.NewValidation("name and email are required")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return apperrors.NewValidation("invalid e-mail format")
	}
	return nil
}

func (c CandidateData) UpdateMap() map[string]interface{} {
	return map[string]interface{}{
		"name":       strings.TrimSpace(c.Name),
		"email":      strings.TrimSpace(c.Email),
		"phone":      strings.TrimSpace(c.Phone),
		"skills":     c.Skills,
		"education":  c.Education,
		"experience": c.Experience,
		"ctc":        c.Ctc,
		"ectc":       c.Ectc,
		"source":     c.Source,
	}
}

type CandidateFilter struct {
	apimodels.Pagination
	Search string `query:"search"` // Name, e-mail or skills substring
}

type CandidateView struct {
	CandidateData
	ID             string    `json:"id"`
	ResumeFileName string    `json:"resume_filename"`
	HasResume      bool      `json:"has_resume"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	result := CandidateView{
		CandidateData: CandidateData{
			Name:       rec.Name,
			Email:      rec.Email,
			Phone:      rec.Phone,
			Skills:     rec.Skills,
			Education:  rec.Education,
			Experience: rec.Experience,
			Ctc:        rec.Ctc,
			Ectc:       rec.Ectc,
			Source:     rec.Source,
		},
		ID:             rec.ID,
		ResumeFileName: rec.ResumeFileName,
		HasResume:      rec.HasResume(),
		CreatedAt:      rec.CreatedAt,
	}
	if rec.CreatedBy != nil {
		result.CreatedBy = *rec.CreatedBy
	}
	return result
}

func CandidateListConvert(list []dbmodels.Candidate) []CandidateView {
	result := make([]CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, CandidateConvert(rec))
	}
	return result
}
