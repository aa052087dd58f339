package rbac

import (
	"ats-backend/models"
)

var (
	AdminRoleSet      = []models.UserRole{models.UserRoleAdmin}
	ManagementRoleSet = []models.UserRole{models.UserRoleAdmin, models.UserRoleDeliveryManager}
	LeadRoleSet       = []models.UserRole{models.UserRoleAdmin, models.UserRoleDeliveryManager, models.UserRoleTeamLead}
	StaffRoleSet      = []models.UserRole{models.UserRoleAdmin, models.UserRoleDeliveryManager, models.UserRoleTeamLead, models.UserRoleRecruiter}
	ClientViewRoleSet = []models.UserRole{models.UserRoleAdmin, models.UserRoleDeliveryManager, models.UserRoleTeamLead, models.UserRoleRecruiter, models.UserRoleClient}
	AllRoles          = []models.UserRole{models.UserRoleAdmin, models.UserRoleDeliveryManager, models.UserRoleTeamLead, models.UserRoleRecruiter, models.UserRoleClient, models.UserRoleCandidate}
)

func (i *impl) initRules() {
	i.profile()
	i.users()
	i.clients()
	i.requirements()
	i.candidates()
	i.pipeline()
	i.interviews()
	i.screening()
	i.ai()
	i.reports()
}

func (i *impl) profile() {
	i.mustRegister(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/auth/me [get]", nil)
	i.mustRegister(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/roles [get]", nil)
}

func (i *impl) users() {
	// VIEW
	i.mustRegister(models.UsersModule, models.ViewPermission, ManagementRoleSet, "/api/v1/users [get]", nil)
	i.mustRegister(models.UsersModule, models.ViewPermission, ManagementRoleSet, "/api/v1/users/{id} [get]", nil)
	i.mustRegister(models.UsersModule, models.ViewPermission, ManagementRoleSet, "/api/v1/users/{id}/details [get]", AllowSelfOrRolesFunc(ManagementRoleSet))
	i.mustRegister(models.UsersModule, models.ViewPermission, LeadRoleSet, "/api/v1/recruiters [get]", nil)
	// MANAGE
	i.mustRegister(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/users [post]", nil)
	i.mustRegister(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/users/{id} [put]", nil)
	i.mustRegister(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/users/{id}/status [put]", nil)
	i.mustRegister(models.UsersModule, models.ManagePermission, AdminRoleSet, "/api/v1/users/{id} [delete]", nil)
}

func (i *impl) clients() {
	// VIEW
	i.mustRegister(models.ClientsModule, models.ViewPermission, ClientViewRoleSet, "/api/v1/clients [get]", nil)
	i.mustRegister(models.ClientsModule, models.ViewPermission, ClientViewRoleSet, "/api/v1/clients/{id} [get]", nil)
	// MANAGE
	i.mustRegister(models.ClientsModule, models.ManagePermission, ManagementRoleSet, "/api/v1/clients [post]", nil)
	i.mustRegister(models.ClientsModule, models.ManagePermission, ManagementRoleSet, "/api/v1/clients/{id} [put]", nil)
	i.mustRegister(models.ClientsModule, models.ManagePermission, ManagementRoleSet, "/api/v1/clients/{id} [delete]", nil)
}

func (i *impl) requirements() {
	// VIEW
	i.mustRegister(models.RequirementsModule, models.ViewPermission, ClientViewRoleSet, "/api/v1/requirements [get]", nil)
	i.mustRegister(models.RequirementsModule, models.ViewPermission, ManagementRoleSet, "/api/v1/requirements/recent [get]", nil)
	i.mustRegister(models.RequirementsModule, models.ViewPermission, ClientViewRoleSet, "/api/v1/requirements/{id} [get]", nil)
	i.mustRegister(models.RequirementsModule, models.ViewPermission, StaffRoleSet, "/api/v1/requirements/{id}/stages [get]", nil)
	// CREATE/EDIT
	i.mustRegister(models.RequirementsModule, models.CreatePermission, ManagementRoleSet, "/api/v1/requirements [post]", nil)
	i.mustRegister(models.RequirementsModule, models.EditPermission, ManagementRoleSet, "/api/v1/requirements/{id} [put]", nil)
	i.mustRegister(models.RequirementsModule, models.EditPermission, ManagementRoleSet, "/api/v1/requirements/{id} [delete]", nil)
	// STAGES
	i.mustRegister(models.RequirementsModule, models.StagesPermission, ManagementRoleSet, "/api/v1/requirements/{id}/stages [post]", nil)
	// TEAM
	i.mustRegister(models.RequirementsModule, models.TeamPermission, LeadRoleSet, "/api/v1/requirements/{id}/allocations [post]", nil)
	i.mustRegister(models.RequirementsModule, models.TeamPermission, LeadRoleSet, "/api/v1/requirements/{id}/allocations [get]", nil)
	i.mustRegister(models.RequirementsModule, models.TeamPermission, LeadRoleSet, "/api/v1/recruiters/{id}/requirements [get]", AllowSelfOrRolesFunc(LeadRoleSet))
}

func (i *impl) candidates() {
	// VIEW
	i.mustRegister(models.CandidatesModule, models.ViewPermission, StaffRoleSet, "/api/v1/candidates [get]", nil)
	i.mustRegister(models.CandidatesModule, models.ViewPermission, StaffRoleSet, "/api/v1/candidates/{id} [get]", nil)
	// EDIT
	i.mustRegister(models.CandidatesModule, models.EditPermission, StaffRoleSet, "/api/v1/candidates [post]", nil)
	i.mustRegister(models.CandidatesModule, models.EditPermission, StaffRoleSet, "/api/v1/candidates/{id} [put]", nil)
	i.mustRegister(models.CandidatesModule, models.EditPermission, ManagementRoleSet, "/api/v1/candidates/{id} [delete]", nil)
	// FILES
	i.mustRegister(models.CandidatesModule, models.FilesPermission, StaffRoleSet, "/api/v1/candidates/{id}/resume [get]", nil)
}

func (i *impl) pipeline() {
	// VIEW
	i.mustRegister(models.PipelineModule, models.ViewPermission, StaffRoleSet, "/api/v1/tracker/{candidate_id} [get]", nil)
	i.mustRegister(models.PipelineModule, models.ViewPermission, StaffRoleSet, "/api/v1/candidate-progress [get]", nil)
	i.mustRegister(models.PipelineModule, models.ViewPermission, StaffRoleSet, "/api/v1/candidate-progress/{candidate_id}/{req_ref} [get]", nil)
	// FLOW
	i.mustRegister(models.PipelineModule, models.FlowPermission, StaffRoleSet, "/api/v1/stage-status [post]", nil)
	i.mustRegister(models.PipelineModule, models.FlowPermission, StaffRoleSet, "/api/v1/recruiter-decision [post]", nil)
	i.mustRegister(models.PipelineModule, models.FlowPermission, StaffRoleSet, "/api/v1/assign-candidate [post]", nil)
	// EVENTS
	i.mustRegister(models.PipelineModule, models.ViewPermission, StaffRoleSet, "/api/v1/ws [get]", nil)
}

func (i *impl) interviews() {
	i.mustRegister(models.InterviewsModule, models.ViewPermission, StaffRoleSet, "/api/v1/interviews [get]", nil)
	i.mustRegister(models.InterviewsModule, models.EditPermission, StaffRoleSet, "/api/v1/interviews [post]", nil)
	i.mustRegister(models.InterviewsModule, models.EditPermission, StaffRoleSet, "/api/v1/interviews/{id}/stage [put]", nil)
	i.mustRegister(models.InterviewsModule, models.EditPermission, StaffRoleSet, "/api/v1/interviews/{id}/status [put]", nil)
}

func (i *impl) screening() {
	i.mustRegister(models.ScreeningModule, models.FlowPermission, StaffRoleSet, "/api/v1/screen-candidate [post]", nil)
	i.mustRegister(models.ScreeningModule, models.ViewPermission, StaffRoleSet, "/api/v1/candidates/{id}/screenings [get]", nil)
}

func (i *impl) ai() {
	i.mustRegister(models.AIModule, models.ViewPermission, AllRoles, "/api/v1/ai/chat [post]", nil)
	i.mustRegister(models.AIModule, models.CreatePermission, ManagementRoleSet, "/api/v1/ai/job-description [post]", nil)
}

func (i *impl) reports() {
	// VIEW
	i.mustRegister(models.ReportsModule, models.ViewPermission, LeadRoleSet, "/api/v1/reports/dashboard-stats [get]", nil)
	i.mustRegister(models.ReportsModule, models.ViewPermission, LeadRoleSet, "/api/v1/reports/stats [get]", nil)
	i.mustRegister(models.ReportsModule, models.ViewPermission, LeadRoleSet, "/api/v1/reports/clients [get]", nil)
	i.mustRegister(models.ReportsModule, models.ViewPermission, LeadRoleSet, "/api/v1/reports/client/{id}/requirements [get]", nil)
	i.mustRegister(models.ReportsModule, models.ViewPermission, LeadRoleSet, "/api/v1/reports/requirement/{id}/stats [get]", nil)
	i.mustRegister(models.ReportsModule, models.ViewPermission, LeadRoleSet, "/api/v1/reports/requirement/{id}/stage/candidates [get]", nil)
	// EXPORT
	i.mustRegister(models.ReportsModule, models.ExportPermission, LeadRoleSet, "/api/v1/reports/requirement/{id}/export [get]", nil)
	i.mustRegister(models.ReportsModule, models.ExportPermission, StaffRoleSet, "/api/v1/reports/candidate/{id}/tracker [get]", nil)
}
