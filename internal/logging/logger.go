// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the zap sugared logger extended with a security event logger
type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

func (l *Logger) Sync() error {
	_ = l.security.l.Sync()
	return l.SugaredLogger.Sync()
}

// NewLogger creates a json logger writing to stdout, level is parsed case insensitively
// and falls back to error when it is not recognised.
func NewLogger(l string) *Logger {
	var lvl string

	switch strings.ToLower(l) {
	case "debug":
		lvl = "debug"
	case "info":
		lvl = "info"
	case "warning", "warn":
		lvl = "warn"
	default:
		lvl = "error"
	}

	level, err := zap.ParseAtomicLevel(lvl)
	if err != nil {
		level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	}

	c := zap.NewProductionConfig()
	c.Level = level
	c.EncoderConfig.TimeKey = "@timestamp"
	c.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	logger := zap.Must(c.Build())

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      newSecurityLogger(logger),
	}
}
