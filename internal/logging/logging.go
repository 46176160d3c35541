// Package logging builds the process logger.
package logging

import (
	"github.com/goliatone/go-cv-backend/internal/config"
	goerrors "github.com/goliatone/go-errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger, or a console logger when
// cfg.Development is set, filtered at cfg.Level.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid log level").
			WithTextCode(config.TextCodeInvalidConfig)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "build logger")
	}
	return logger, nil
}
