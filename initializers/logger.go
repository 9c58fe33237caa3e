package initializers

import (
	log "github.com/sirupsen/logrus"
	"komreq-backend/fiberlog"
)

func InitLogger() *fiberlog.Config {
	formatter := &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
	log.SetFormatter(formatter)
	log.SetLevel(log.InfoLevel)

	logger := log.New()
	logger.SetFormatter(formatter)
	logger.SetLevel(log.DebugLevel)
	return &fiberlog.Config{
		Logger: logger,
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagIP,
			fiberlog.TagUserID,
			fiberlog.TagRequestID,
		},
		Skip: fiberlog.SkipPreflightAndWs,
	}
}
