package initializers

import (
	"ats-backend/fiberlog"

	log "github.com/sirupsen/logrus"
)

func jsonFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

// InitLogger sets up the application log and returns the request log config.
// Unknown levels fall back to info.
func InitLogger(level string) *fiberlog.Config {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}
	log.SetFormatter(jsonFormatter())
	log.SetLevel(lvl)

	requests := log.New()
	requests.SetFormatter(jsonFormatter())
	requests.SetLevel(log.InfoLevel)
	return &fiberlog.Config{
		Logger: requests,
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagUserID,
			fiberlog.RequestID,
			fiberlog.TagBody,
			fiberlog.TagResBody,
		},
		SkipPaths:  []string{"/health"},
		MaxBodyLen: 2048,
	}
}
