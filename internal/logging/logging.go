package logging

import (
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/lockbox-server/internal/config"
)

// New builds the process logger: colored text on stderr, debug level
// in development, plus an optional JSON rotating file sink when
// LOG_FILE is set.
func New() *logrus.Logger {
	log := logrus.New()

	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if path := config.LogFile(); path != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.WithError(err).Warn("unable to attach rotating log file")
		} else {
			log.AddHook(hook)
		}
	}

	return log
}
