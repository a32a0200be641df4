// Package logging builds the zap loggers used by the graphwalk commands.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger encoding, level and destinations.
type Options struct {
	// Format is "console" (development encoder) or "json" (production encoder).
	Format string
	// Level is one of debug, info, warn, error. Anything else means info.
	Level string
	// File, when set, receives a copy of every entry.
	File string
	// Quiet drops the stderr destination, e.g. while a full-screen UI owns
	// the terminal.
	Quiet bool
	// Sink, when set, receives console-encoded entries in addition to the
	// other destinations.
	Sink zapcore.WriteSyncer
}

// New builds a zap logger from opts.
func New(opts Options) (*zap.Logger, error) {
	var zapCfg zap.Config
	if strings.EqualFold(opts.Format, "console") {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	}
	level := ParseLevel(opts.Level)
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	zapCfg.OutputPaths = nil
	if !opts.Quiet {
		zapCfg.OutputPaths = append(zapCfg.OutputPaths, "stderr")
	}
	if opts.File != "" {
		zapCfg.OutputPaths = append(zapCfg.OutputPaths, opts.File)
	}

	var buildOpts []zap.Option
	if opts.Sink != nil {
		sinkCore := zapcore.NewCore(zapcore.NewConsoleEncoder(sinkEncoderConfig()), opts.Sink, level)
		buildOpts = append(buildOpts, zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, sinkCore)
		}))
	}

	logger, err := zapCfg.Build(buildOpts...)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return logger, nil
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// sinkEncoderConfig is a compact, colorless layout for in-app log panes.
func sinkEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.CallerKey = zapcore.OmitKey
	cfg.NameKey = zapcore.OmitKey

	return cfg
}
