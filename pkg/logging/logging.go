// Package logging builds the zap loggers used for diagnostic output. The
// operator-facing console output lives in package console.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const DefaultLevel = "warn"

// ParseLevel parses a level name. An empty name yields DefaultLevel.
func ParseLevel(level string) (zapcore.Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if normalized == "" {
		normalized = DefaultLevel
	}
	if normalized == "warning" {
		normalized = "warn"
	}

	var parsed zapcore.Level
	if err := parsed.UnmarshalText([]byte(normalized)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q", level)
	}
	return parsed, nil
}

// New returns a console-encoded logger writing to out at level.
func New(level string, out zapcore.WriteSyncer) (*zap.Logger, error) {
	parsed, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(out),
		zap.NewAtomicLevelAt(parsed),
	)

	return zap.New(core, zap.AddCaller()).Named("edai"), nil
}
