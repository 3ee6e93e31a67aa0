// Package log wraps zap into the debug sink the parser consults at each
// pipeline stage boundary.
package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log struct holds the zap Logger instance.
type Log struct {
	*zap.Logger
	mu      sync.Mutex // Mutex for thread-safe logging
	enabled bool
}

// NewBasicLogger creates a console debug logger writing to stdout. It carries
// a default configuration suitable for tracing parses during development.
func NewBasicLogger() *Log {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "log",
		MessageKey:     "msg",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)

	return &Log{Logger: zap.New(core), enabled: true}
}

// NewNopLogger creates a logger that discards everything. It is the default
// sink; callers opt into debug output explicitly.
func NewNopLogger() *Log {
	return &Log{Logger: zap.NewNop()}
}

// Enabled reports whether this sink produces output. Callers use it to skip
// building expensive debug fields when the sink is a nop.
func (l *Log) Enabled() bool {
	return l != nil && l.enabled
}

// SafeLog ensures thread-safe logging.
func (l *Log) SafeLog(level zapcore.Level, msg string, fields ...zap.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch level {
	case zap.DebugLevel:
		l.Logger.Debug(msg, fields...)
	case zap.InfoLevel:
		l.Logger.Info(msg, fields...)
	case zap.WarnLevel:
		l.Logger.Warn(msg, fields...)
	case zap.ErrorLevel:
		l.Logger.Error(msg, fields...)
	case zap.FatalLevel:
		l.Logger.Fatal(msg, fields...)
	}
}

// Debug logs a message at the DebugLevel.
func (l *Log) Debug(msg string, fields ...zap.Field) {
	l.Logger.Debug(msg, fields...)
}

// With creates a child Log with the specified fields.
func (l *Log) With(fields ...zap.Field) *Log {
	return &Log{Logger: l.Logger.With(fields...), enabled: l.enabled}
}

// Sync flushes any buffered log entries. Applications should take care to
// call Sync before exiting.
func (l *Log) Sync() error {
	return l.Logger.Sync()
}
