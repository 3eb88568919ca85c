package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the shared application logger. APP_ENV=dev switches to a
// human-friendly text format; everything else logs JSON.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	env := os.Getenv("APP_ENV")
	if env == "dev" || env == "development" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
