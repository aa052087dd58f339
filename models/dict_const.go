package models

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "ACTIVE"
	ClientStatusInactive ClientStatus = "INACTIVE"
)

func (s ClientStatus) IsValid() bool {
	return s == ClientStatusActive || s == ClientStatusInactive
}

type RequirementStatus string

const (
	RequirementStatusOpen   RequirementStatus = "OPEN"
	RequirementStatusOnHold RequirementStatus = "ON_HOLD"
	RequirementStatusClosed RequirementStatus = "CLOSED"
)

func (s RequirementStatus) IsValid() bool {
	switch s {
	case RequirementStatusOpen, RequirementStatusOnHold, RequirementStatusClosed:
		return true
	}
	return false
}

type AllocationStatus string

const (
	AllocationStatusAssigned AllocationStatus = "ASSIGNED"
)
