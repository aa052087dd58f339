package clientapimodels

import (
	"net/mail"
	"strings"
	"time"

	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type ClientData struct {
	Name          string              `json:"name"`           // Company name
	ContactPerson string              `json:"contact_person"` // Contact person
	Email         string              `json:"email"`          // Contact e-mail
	Phone         string              `json:"phone"`          // Contact phone
	Address       string              `json:"address"`        // Address
	Status        models.ClientStatus `json:"status"`         // ACTIVE | INACTIVE, ACTIVE when omitted
}

func (c ClientData) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return apperrors.NewValidation("client name is required")
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return apperrors.NewValidation("invalid e-mail format")
		}
	}
	if c.Status != "" && !c.Status.IsValid() {
		return apperrors.NewValidation("invalid client status: %s", c.Status)
	}
	return nil
}

func (c ClientData) GetStatus() models.ClientStatus {
	if c.Status == "" {
		return models.ClientStatusActive
	}
	return c.Status
}

type ClientView struct {
	ClientData
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func ClientConvert(rec dbmodels.Client) ClientView {
	return ClientView{
		ClientData: ClientData{
			Name:          rec.Name,
			ContactPerson: rec.ContactPerson,
			Email:         rec.Email,
			Phone:         rec.Phone,
			Address:       rec.Address,
			Status:        rec.Status,
		},
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
	}
}
