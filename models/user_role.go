package models

type UserRole string

const (
	UserRoleAdmin           UserRole = "ADMIN"
	UserRoleDeliveryManager UserRole = "DELIVERY_MANAGER"
	UserRoleTeamLead        UserRole = "TEAM_LEAD"
	UserRoleRecruiter       UserRole = "RECRUITER"
	UserRoleClient          UserRole = "CLIENT"
	UserRoleCandidate       UserRole = "CANDIDATE"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:           "Admin",
	UserRoleDeliveryManager: "Delivery Manager",
	UserRoleTeamLead:        "Team Lead",
	UserRoleRecruiter:       "Recruiter",
	UserRoleClient:          "Client",
	UserRoleCandidate:       "Candidate",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := roleHumanName[r]
	return ok
}

// SeesAllData reports whether the role is not scoped to own or allocated records.
func (r UserRole) SeesAllData() bool {
	return r == UserRoleAdmin || r == UserRoleDeliveryManager
}

// CanTakeAllocation reports whether a requirement can be allocated to the role.
func (r UserRole) CanTakeAllocation() bool {
	return r == UserRoleRecruiter || r == UserRoleTeamLead
}

const SystemUser = "system"

type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}
