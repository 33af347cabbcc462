package fedi

import "go.uber.org/zap"

// zapLogger adapts a zap logger to the Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps a zap logger for use as Config.Logger.
func NewZapLogger(logger *zap.Logger) Logger {
	return &zapLogger{sugar: logger.Sugar()}
}

// Debug implements Logger.
func (z *zapLogger) Debug(msg string, fields map[string]interface{}) {
	z.sugar.Debugw(msg, flattenFields(fields)...)
}

// Info implements Logger.
func (z *zapLogger) Info(msg string, fields map[string]interface{}) {
	z.sugar.Infow(msg, flattenFields(fields)...)
}

// Warn implements Logger.
func (z *zapLogger) Warn(msg string, fields map[string]interface{}) {
	z.sugar.Warnw(msg, flattenFields(fields)...)
}

// Error implements Logger.
func (z *zapLogger) Error(msg string, fields map[string]interface{}) {
	z.sugar.Errorw(msg, flattenFields(fields)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}
