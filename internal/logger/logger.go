package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	log  *zap.Logger
	once sync.Once
)

// Get returns the process-wide logger, building it on first use.
// GIN_MODE=release switches to the production encoder.
func Get() *zap.Logger {
	once.Do(func() {
		var err error
		if os.Getenv("GIN_MODE") == "release" {
			log, err = zap.NewProduction()
		} else {
			log, err = zap.NewDevelopment()
		}
		if err != nil {
			log = zap.NewNop()
		}
	})
	return log
}

// Info logs an info message with fields.
func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

// Error logs an error message with fields.
func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}

// Warn logs a warning message with fields.
func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}
