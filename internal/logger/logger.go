// Package logger builds folio's zap loggers and carries the request-scoped
// one through contexts.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const service = "folio"

var configs = map[string]func() zap.Config{
	"prod":   zap.NewProductionConfig,
	"local":  consoleConfig,
	"dev":    consoleConfig,
	"docker": consoleConfig,
}

func consoleConfig() zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// NewLogger builds the process logger for env: JSON in prod, coloured
// console everywhere else. A non-empty level replaces the env default.
// Every entry carries the service and env fields.
func NewLogger(env, level string) (*zap.Logger, error) {
	newConfig, ok := configs[env]
	if !ok {
		return nil, fmt.Errorf("logger: unknown environment %q", env)
	}
	cfg := newConfig()

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logger: level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.InitialFields = map[string]any{"service": service, "env": env}

	l, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("logger: build: %w", err)
	}
	return l, nil
}
