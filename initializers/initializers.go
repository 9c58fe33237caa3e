package initializers

import (
	"context"

	"komreq-backend/config"
	"komreq-backend/fiberlog"
	auditloghandler "komreq-backend/lib/audit-log"
	equipmenttypehandler "komreq-backend/lib/equipment-type"
	xlsexport "komreq-backend/lib/export/xls"
	filestorage "komreq-backend/lib/file-storage"
	notificationhandler "komreq-backend/lib/notification"
	emailworker "komreq-backend/lib/notification/email-worker"
	"komreq-backend/lib/rbac"
	reporthandler "komreq-backend/lib/report"
	requesthandler "komreq-backend/lib/request"
	requeststatushandler "komreq-backend/lib/request-status"
	"komreq-backend/lib/smtp"
	statusstatistichandler "komreq-backend/lib/status-statistic"
	usershandler "komreq-backend/lib/users"
	connectionhub "komreq-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	rbac.NewHandler()
	filestorage.NewHandler()
	notificationhandler.NewHandler()
	auditloghandler.NewHandler()
	statusstatistichandler.NewHandler()
	usershandler.NewHandler(rbac.Instance.GetPermissions)
	equipmenttypehandler.NewHandler()
	requeststatushandler.NewHandler()
	requesthandler.NewHandler()
	xlsexport.NewHandler()
	reporthandler.NewHandler()
	initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// отправка на почту уведомлений, не доставленных через ws
	if *config.Conf.Notification.EmailEnabled && smtp.Instance.IsConfigured() {
		emailworker.StartWorker(ctx)
	}
}
