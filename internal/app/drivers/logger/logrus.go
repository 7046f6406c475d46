package logger

import (
	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/pkg/constvars"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger is the command line counterpart of NewZapLogger. Output
// goes to stderr so exported documents can be piped from stdout.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	return newLogrusLogger(driverConfig, internalConfig, os.Stderr)
}

func newLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{})
	}
	return logger
}
