// Package logging builds the zap-backed logr loggers used across the
// simulator.
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels used with logr.V. DEFAULT is always emitted, DEBUG
// carries per-tick and per-passenger detail, TRACE is reserved for
// queue internals.
const (
	DEFAULT = 0
	DEBUG   = 1
	TRACE   = 2
)

// NewLogger returns a production logger emitting everything up to the
// given logr verbosity.
func NewLogger(verbosity int) logr.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	zl, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return zapr.NewLogger(zl)
}

// NewTestLogger returns a dev-mode logger with all verbosity enabled.
func NewTestLogger() logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-TRACE))
	zl, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return zapr.NewLogger(zl)
}
