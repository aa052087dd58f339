package authapimodels

import (
	"net/mail"
	"strings"

	apperrors "ats-backend/lib/utils/app-errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return apperrors.NewValidation("invalid e-mail format")
	}
	if r.Password == "" {
		return apperrors.NewValidation("password is required")
	}
	return nil
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"` // Optional, replaces the name set by the admin
}

func (r SignupRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return apperrors.NewValidation("invalid e-mail format")
	}
	if len(strings.TrimSpace(r.Password)) < 6 {
		return apperrors.NewValidation("password must be at least 6 characters")
	}
	return nil
}
