// Package logging builds the zap loggers used across the service.
package logging

import (
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"brewery/internal/config"
)

// New returns a JSON production logger writing to stdout.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.EncoderConfig = encoderConfig(cfg.Location())
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	return zc.Build()
}

// NewWithWriter returns a JSON logger writing to w. Used by tests and by
// middleware that needs a dedicated sink.
func NewWithWriter(w io.Writer, level zapcore.Level, loc *time.Location) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig(loc)),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

// ParseLevel maps LOG_LEVEL values to zap levels; unknown values mean info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return zap.DebugLevel
	case "WARN":
		return zap.WarnLevel
	case "ERROR":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func encoderConfig(loc *time.Location) zapcore.EncoderConfig {
	if loc == nil {
		loc = time.UTC
	}
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "ts"
	ec.MessageKey = "msg"
	ec.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(loc).Format(time.RFC3339Nano))
	}
	return ec
}
