// Package logging builds the process logger. Output goes to stderr so it
// never mixes with the rendered report on stdout.
package logging

import (
	"go.uber.org/zap"
)

// New returns a sugared zap logger. Debug mode uses the development config
// at debug level; otherwise only warnings and errors are emitted.
func New(debug bool) *zap.SugaredLogger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
