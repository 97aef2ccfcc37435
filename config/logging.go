package config

import (
	"go.uber.org/zap"

	"github.com/linesmerrill/haemo-report-api/logging"
)

// setLogger builds the logger for env and replaces the zap globals with it
func setLogger(env string) (*zap.Logger, error) {
	logger, err := logging.New(env)
	if err != nil {
		return nil, err
	}
	_ = zap.ReplaceGlobals(logger)
	return logger, nil
}
