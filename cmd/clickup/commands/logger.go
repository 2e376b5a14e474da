package commands

import (
	"io"
	"maps"
	"slices"

	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerConfig holds CLI logger configuration.
type LoggerConfig struct {
	Verbose bool
	Output  io.Writer
}

// zapLogger adapts a zap.Logger to clickup.Logger.
type zapLogger struct {
	logger *zap.Logger
}

// NewLogger returns a console logger writing debug output to cfg.Output
// when cfg.Verbose is set, and a no-op logger otherwise.
func NewLogger(cfg LoggerConfig) clickup.Logger {
	if !cfg.Verbose || cfg.Output == nil {
		return &zapLogger{logger: zap.NewNop()}
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(cfg.Output),
		zapcore.DebugLevel,
	)

	return &zapLogger{logger: zap.New(core)}
}

func (l *zapLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, zapFields(fields)...)
}

func (l *zapLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, zapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, zapFields(fields)...)
}

func (l *zapLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, zapFields(fields)...)
}

// zapFields converts a field map to zap fields in key order.
func zapFields(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		out = append(out, zap.Any(key, fields[key]))
	}

	return out
}
