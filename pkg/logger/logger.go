package log

import (
	"log"
	"time"

	masker "github.com/ggwhite/go-masker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	encoderConfig := zap.NewProductionConfig()
	encoderConfig.Level = level
	encoderConfig.EncoderConfig.TimeKey = "timestamp"
	encoderConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339Nano)

	zapLogger, err := encoderConfig.Build()
	if err != nil {
		log.Fatalf("fail to build log. err: %s", err)
	}

	logger = zapLogger.With(zap.String("app", "quickcare-go-service"))
}

func Logger() *zap.Logger {
	return logger
}

// SetDebug switches the shared logger between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.InfoLevel)
}

// Email returns a zap field carrying a masked email address.
func Email(email string) zap.Field {
	return zap.String("email", masker.Email(email))
}

// Phone returns a zap field carrying a masked phone number.
func Phone(phone string) zap.Field {
	return zap.String("phone", masker.Mobile(phone))
}
