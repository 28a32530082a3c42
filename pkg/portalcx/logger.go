package portalcx

import (
	"github.com/hashicorp/go-hclog"
)

// HCLogger adapts an hclog.Logger to Logger.
type HCLogger struct {
	logger hclog.Logger
}

// NewHCLogger wraps logger. A nil logger yields a named hclog logger at level.
func NewHCLogger(logger hclog.Logger, level string) *HCLogger {
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:  "portalcx",
			Level: hclog.LevelFromString(level),
		})
	}

	return &HCLogger{logger: logger}
}

// Underlying returns the wrapped hclog logger.
func (l *HCLogger) Underlying() hclog.Logger {
	return l.logger
}

func (l *HCLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, pairs(fields)...)
}

func (l *HCLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, pairs(fields)...)
}

func (l *HCLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, pairs(fields)...)
}

func (l *HCLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, pairs(fields)...)
}

func pairs(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}
