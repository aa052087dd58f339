package initializers

import (
	"context"

	"ats-backend/config"
	"ats-backend/fiberlog"
	"ats-backend/lib/ai/chat"
	"ats-backend/lib/ai/llm"
	"ats-backend/lib/auth"
	"ats-backend/lib/candidate"
	"ats-backend/lib/client"
	dbhealthworker "ats-backend/lib/db-health"
	xlsexport "ats-backend/lib/export/xls"
	filestorage "ats-backend/lib/file-storage"
	"ats-backend/lib/notify"
	"ats-backend/lib/pipeline"
	"ats-backend/lib/rbac"
	"ats-backend/lib/reports"
	"ats-backend/lib/requirement"
	"ats-backend/lib/screening"
	"ats-backend/lib/users"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

// InitBase prepares logging, configuration and the database connection.
func InitBase() {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)
	InitDBConnection()
}

// InitAllServices wires every handler in dependency order. The schema must be current.
func InitAllServices(ctx context.Context) {
	InitS3()
	InitSmtp()
	connectionhub.Init()
	notify.NewHandler()
	llm.NewHandler()
	filestorage.NewHandler()
	pipeline.NewHandler()
	requirement.NewHandler()
	client.NewHandler()
	candidate.NewHandler()
	users.NewHandler()
	auth.NewHandler()
	screening.NewHandler()
	xlsexport.NewHandler()
	reports.NewHandler()
	chat.NewHandler()
	rbac.NewHandler()
	InitPreload()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	dbhealthworker.StartWorker(ctx)
}
