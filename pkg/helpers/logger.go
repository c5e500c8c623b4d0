package helpers

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logrus logger for env: text at debug level in
// development, discarded output under test, JSON at info level otherwise.
func NewLogger(appName, env string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	switch strings.ToLower(env) {
	case "development", "local":
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "test":
		logger.SetOutput(io.Discard)
	default:
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{logrus.FieldKeyMsg: "message", logrus.FieldKeyTime: "timestamp"},
		})
	}
	logger.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logger initialized")
	return logger
}
