package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

// GetLogger retorna o logger JSON compartilhado da aplicação.
func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)
	if os.Getenv("LOG_DEBUG") == "true" {
		logg.SetLevel(logrus.DebugLevel)
	} else {
		logg.SetLevel(logrus.InfoLevel)
	}
}

// LogError registra uma falha com módulo, função e contexto estruturados.
func LogError(logger *logrus.Logger, moduleName, funcName, context string, err error) {
	logger.WithFields(logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}).Error(err.Error())
}
