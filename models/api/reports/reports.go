package reportsapimodels

import (
	"time"

	"ats-backend/models"
)

type DashboardStats struct {
	TotalRequirements    int64   `json:"totalRequirements"`
	OpenRequirements     int64   `json:"openRequirements"`
	ClosedRequirements   int64   `json:"closedRequirements"`
	OnHoldRequirements   int64   `json:"onHoldRequirements"`
	AssignedRequirements int64   `json:"assignedRequirements"` // requirements with at least one allocation
	Urgent               int64   `json:"urgent"`               // open with more than 5 rounds
	PendingReview        int64   `json:"pendingReview"`        // open without an allocation
	ClosedGrowthPercent  float64 `json:"closedGrowthPercent"`  // closed this month to total, percent
}

type RequirementCounts struct {
	Total  int64 `json:"total"`
	Open   int64 `json:"open_reqs"`
	Closed int64 `json:"closed_reqs"`
}

type ClientStat struct {
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`
	ReqCount   int64  `json:"req_count"`
}

type GlobalStats struct {
	Requirements RequirementCounts `json:"requirements"`
	Candidates   int64             `json:"candidates"`
	Selections   int64             `json:"selections"` // completed at the last round
	ClientStats  []ClientStat      `json:"client_stats"`
}

type StageStat struct {
	StageName  string                `json:"stage_name"`
	StageOrder *int                  `json:"stage_order"`
	Status     models.ProgressStatus `json:"status"`
	Count      int64                 `json:"count"`
}

type RequirementSummary struct {
	ID         string                   `json:"id"`
	Title      string                   `json:"title"`
	NoOfRounds int                      `json:"no_of_rounds"`
	Status     models.RequirementStatus `json:"status"`
}

type RequirementStats struct {
	Requirement        RequirementSummary `json:"requirement"`
	Stats              []StageStat        `json:"stats"`
	TotalCandidates    int64              `json:"total_candidates"`
	SelectedCandidates int64              `json:"selected_candidates"`
}

type StageCandidate struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Status    models.ProgressStatus `json:"status"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type StageCandidatesFilter struct {
	StageName string `query:"stage_name"`
}

type ClientItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ClientRequirement struct {
	ID        string                   `json:"id"`
	Title     string                   `json:"title"`
	Status    models.RequirementStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
}

// PipelineRow is one candidate line of a requirement pipeline export.
type PipelineRow struct {
	CandidateName  string
	CandidateEmail string
	StageName      string
	Status         models.ProgressStatus
	Decision       models.Decision
	UpdatedAt      time.Time
}
