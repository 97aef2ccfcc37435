// Package logging builds the zap logger for the environment the api runs in.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger for env. local logs everything down to debug
// in console form, development logs info and above, anything else is treated
// as production and logs JSON.
func New(env string) (*zap.Logger, error) {
	switch env {
	case "local":
		return zap.NewDevelopment()
	case "development":
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		return cfg.Build()
	default:
		return zap.NewProduction()
	}
}
