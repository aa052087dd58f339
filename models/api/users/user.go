package usersapimodels

import (
	"net/mail"
	"strings"
	"time"

	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/models"
	candidateapimodels "ats-backend/models/api/candidate"
	requirementapimodels "ats-backend/models/api/requirement"
	dbmodels "ats-backend/models/db"
)

type UserData struct {
	Name     string          `json:"name"`      // Full name
	Email    string          `json:"email"`     // Login e-mail
	Phone    string          `json:"phone"`     // Phone
	Role     models.UserRole `json:"role"`      // ADMIN | DELIVERY_MANAGER | TEAM_LEAD | RECRUITER | CLIENT | CANDIDATE
	ClientID string          `json:"client_id"` // Required for CLIENT users
	Password string          `json:"password"`  // Optional, without it the user completes signup
}

func (u UserData) Validate() error {
	if strings.TrimSpace(u.Name) == "" || strings.TrimSpace(u.Email) == "" {
		return apperrors.NewValidation("name and email are required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return apperrors.NewValidation("invalid e-mail format")
	}
	if u.Role != "" && !u.Role.IsValid() {
		return apperrors.NewValidation("invalid role: %s", u.Role)
	}
	if u.Role == models.UserRoleClient && strings.TrimSpace(u.ClientID) == "" {
		return apperrors.NewValidation("client_id is required for client users")
	}
	if u.Password != "" && len(u.Password) < 6 {
		return apperrors.NewValidation("password must be at least 6 characters")
	}
	return nil
}

func (u UserData) GetRole() models.UserRole {
	if u.Role == "" {
		return models.UserRoleRecruiter
	}
	return u.Role
}

type StatusUpdate struct {
	Status models.UserStatus `json:"status"` // ACTIVE | INACTIVE
}

func (s *StatusUpdate) Validate() error {
	s.Status = models.UserStatus(strings.ToUpper(strings.TrimSpace(string(s.Status))))
	if s.Status == "" {
		return apperrors.NewValidation("status is required")
	}
	if !s.Status.IsValid() {
		return apperrors.NewValidation("invalid status value, allowed: ACTIVE, INACTIVE")
	}
	return nil
}

type UserView struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Role      models.UserRole   `json:"role"`
	RoleName  string            `json:"role_name"`
	Status    models.UserStatus `json:"status"`
	ClientID  string            `json:"client_id,omitempty"`
	SignedUp  bool              `json:"signed_up"`
	LastLogin *time.Time        `json:"last_login,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func UserConvert(rec dbmodels.User) UserView {
	result := UserView{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Role:      rec.Role,
		RoleName:  rec.Role.ToHuman(),
		Status:    rec.Status,
		SignedUp:  rec.IsSignedUp(),
		LastLogin: rec.LastLogin,
		CreatedAt: rec.CreatedAt,
	}
	if rec.ClientID != nil {
		result.ClientID = *rec.ClientID
	}
	return result
}

type RecruiterView struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Role models.UserRole `json:"role"`
}

type RoleView struct {
	Role models.UserRole `json:"role"`
	Name string          `json:"name"`
}

// UserDetails is the profile with the work attached to the user.
type UserDetails struct {
	User        UserView                                        `json:"user"`
	Assignments []requirementapimodels.RecruiterRequirementView `json:"assignments"`
	Candidates  []candidateapimodels.CandidateView              `json:"candidates"`
}
