package aiapimodels

import (
	"strings"

	apperrors "ats-backend/lib/utils/app-errors"
)

type ChatRequest struct {
	Message string `json:"message"` // Free-text question about ATS data
}

func (r ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return apperrors.NewValidation("please provide a message")
	}
	return nil
}

type ChatResponse struct {
	Answer  string                 `json:"answer"`
	Intent  string                 `json:"intent"`
	Context map[string]interface{} `json:"context"` // data the answer was built from
}

type JobDescriptionRequest struct {
	Title      string `json:"title"`      // Position title
	Skills     string `json:"skills"`     // Required skills
	Experience string `json:"experience"` // Required experience, free text
	Location   string `json:"location"`   // Work location
	Text       string `json:"text"`       // Any additional notes
}

func (r JobDescriptionRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" && strings.TrimSpace(r.Text) == "" {
		return apperrors.NewValidation("title or text is required")
	}
	return nil
}

type JobDescriptionResponse struct {
	Description string `json:"description"` // generated requirement description
}
