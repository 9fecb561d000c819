package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported output encodings.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize sets up the global logger with the given level and output format.
// An empty format selects JSON.
func Initialize(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	var cfg zap.Config
	switch format {
	case "", FormatJSON:
		cfg = zap.NewProductionConfig()
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar().Named("identity")
	return nil
}
