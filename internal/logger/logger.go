// Package logger builds the process-wide structured logger.
package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New returns a sugared zap logger. mode "prod"/"production" selects JSON
// output; anything else gets the development console encoder.
func New(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}
