package authapimodels

import "ats-backend/models"

type JWTResponse struct {
	Token    string          `json:"token"`
	UserID   string          `json:"user_id"`
	Name     string          `json:"name"`
	Role     models.UserRole `json:"role"`
	ClientID string          `json:"client_id,omitempty"`
}
