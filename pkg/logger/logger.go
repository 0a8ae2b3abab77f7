// Package logger wraps a process-wide zap logger.
//
// Init must be called once from main; until then every helper logs to a no-op
// logger so packages can log freely from tests.
package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu          sync.RWMutex
	global      = zap.NewNop()
	helpers     = zap.NewNop() // global with one extra frame skipped for Info, Warn...
	atomicLevel = zap.NewAtomicLevel()
)

// Init builds the global logger.
// level: debug, info, warn, error
// format: json or console
func Init(level, format string) error {
	if err := atomicLevel.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = atomicLevel

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	replace(l)
	return nil
}

func replace(l *zap.Logger) {
	mu.Lock()
	global = l
	helpers = l.WithOptions(zap.AddCallerSkip(1))
	mu.Unlock()
}

// SetLevel changes the log level at runtime.
func SetLevel(level string) error {
	return atomicLevel.UnmarshalText([]byte(level))
}

// L returns the global logger for direct use.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func h() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return helpers
}

// S returns the global sugared logger.
func S() *zap.SugaredLogger {
	return L().Sugar()
}

func Debug(msg string, fields ...zap.Field) { h().Debug(msg, fields...) }

func Info(msg string, fields ...zap.Field) { h().Info(msg, fields...) }

func Warn(msg string, fields ...zap.Field) { h().Warn(msg, fields...) }

func Error(msg string, fields ...zap.Field) { h().Error(msg, fields...) }

// Sync flushes buffered entries. Call before exit.
func Sync() error {
	return L().Sync()
}
