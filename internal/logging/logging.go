// Package logging builds the engine's structured logger, grounded on cmd/nerd/main.go's
// zap.NewProductionConfig()/NewAtomicLevelAt setup (spec §10.1). Component tags a logger with a
// "component" field instead of codeNERD's bespoke per-category log files, since an embeddable
// library has no workspace directory to write category logs into.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger at the named level ("debug", "info", "warn", "error"), formatted as
// either "text" (console encoder) or "json". An empty/unrecognized format defaults to text, an
// empty/unrecognized level defaults to info.
func New(level, format string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	if format != "json" {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return cfg.Build()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Component returns a child logger tagged with name (pkg/engine tags its lines "engine").
func Component(base *zap.Logger, name string) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.With(zap.String("component", name))
}
