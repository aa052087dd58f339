package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	UsersModule        Module = "USERS"
	ClientsModule      Module = "CLIENTS"
	RequirementsModule Module = "REQUIREMENTS"
	CandidatesModule   Module = "CANDIDATES"
	PipelineModule     Module = "PIPELINE"
	InterviewsModule   Module = "INTERVIEWS"
	ScreeningModule    Module = "SCREENING"
	AIModule           Module = "AI"
	ReportsModule      Module = "REPORTS"
	ProfileModule      Module = "PROFILE"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	FlowPermission   Permission = "FLOW"
	StagesPermission Permission = "STAGES"
	TeamPermission   Permission = "TEAM"
	FilesPermission  Permission = "FILES"
	ExportPermission Permission = "EXPORT"
)
