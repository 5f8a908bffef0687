package helpers

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a configured Logrus logger
func NewLogger(appName, env string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logger initialized")
	return logger
}

// DiscardLogger returns a logger that drops everything; handy for tests and tools.
func DiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// RequestEntry scopes a log entry to one HTTP request.
func RequestEntry(logger *logrus.Logger, requestID, ip string) *logrus.Entry {
	fields := logrus.Fields{}
	if requestID != "" {
		fields["request_id"] = requestID
	}
	if ip != "" {
		fields["ip"] = ip
	}
	return logger.WithFields(fields)
}
