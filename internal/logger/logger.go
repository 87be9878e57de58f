package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger = zap.NewNop()

// Init configures the process-wide JSON logger. Safe to call once at
// startup; before Init all log calls are no-ops.
func Init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig = encoderConfig
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	globalLogger = l
}

func Info(msg string, fields map[string]any) {
	globalLogger.Info(msg, toZapFields(fields)...)
}

func Warn(msg string, fields map[string]any) {
	globalLogger.Warn(msg, toZapFields(fields)...)
}

func Error(msg string, fields map[string]any) {
	globalLogger.Error(msg, toZapFields(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	globalLogger.Fatal(msg, toZapFields(fields)...)
}

func toZapFields(fields map[string]any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
