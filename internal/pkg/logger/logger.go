package logger

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	global *zap.Logger
	once   sync.Once
)

// Init builds the global zap logger. Production mode emits JSON at info
// level; development mode emits colored console output at debug level.
func Init(isProduction bool) {
	once.Do(func() {
		var cfg zap.Config

		if isProduction {
			cfg = zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		var err error
		global, err = cfg.Build()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
	})
}

// L returns the global logger, initializing a development logger if Init
// has not been called (tests).
func L() *zap.Logger {
	if global == nil {
		Init(false)
	}
	return global
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
