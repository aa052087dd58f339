package authapimodels

import "ats-backend/models"

// UserInfo is the caller identity taken from the JWT claims.
type UserInfo struct {
	ID       string
	Name     string
	Role     models.UserRole
	ClientID string
}

func (u UserInfo) SeesAllData() bool {
	return u.Role.SeesAllData()
}
