package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// New builds the process logger. FLIP_ENV=dev switches to the human-readable
// development encoder; anything else gets production JSON.
func New() *zap.SugaredLogger {
	var (
		log *zap.Logger
		err error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if strings.ToLower(os.Getenv("FLIP_ENV")) == "dev" {
		log, err = zap.NewDevelopment(opts...)
	} else {
		log, err = zap.NewProduction(opts...)
	}
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return log.Sugar()
}
