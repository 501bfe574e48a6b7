package log

import (
	"log"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var logger *otelzap.Logger

func SetupLogger() *otelzap.Logger {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to setup logger: %v", err)
	}

	return otelzap.New(zapLogger,
		otelzap.WithMinLevel(zap.InfoLevel),
		otelzap.WithStackTrace(true),
	)
}

func Init(l *otelzap.Logger) {
	logger = l
}

func GetLogger() *otelzap.Logger {
	if logger == nil {
		Init(SetupLogger())
	}
	return logger
}

// Setup is a convenience for tests that need a logger without global state.
func Setup() *otelzap.Logger {
	return otelzap.New(zap.NewNop())
}
