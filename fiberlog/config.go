package fiberlog

import "github.com/sirupsen/logrus"

type Config struct {
	// Logger defaults to the logrus standard logger
	Logger *logrus.Logger
	// Tags are the fields attached to every request line
	Tags []string
	// SkipPaths are path suffixes that are never logged
	SkipPaths []string
	// MaxBodyLen cuts request and response bodies; zero means 2048
	MaxBodyLen int
}

var ConfigDefault = Config{
	Tags: []string{
		TagMethod,
		TagPath,
		TagStatus,
		TagLatency,
	},
}
