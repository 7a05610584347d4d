package utils

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// NewLogger builds a console logger on stderr at the given level ("debug", "info", ...).
// An empty level means info.
func NewLogger(level string) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewLogger] bad level: %+v", level)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = atomicLevel
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "[NewLogger] failed to build logger")
	}
	return logger, nil
}
