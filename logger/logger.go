package logger

import (
	"time"

	"github.com/cprobe/plog/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger discards everything until Build is called.
var Logger = zap.NewNop().Sugar()

func Build() func() {
	c := config.Config.LogConfig

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.EncoderConfig.TimeKey = "ts"
	loggerConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	loggerConfig.DisableStacktrace = true
	loggerConfig.Sampling = nil

	switch c.Level {
	case "debug":
		loggerConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		loggerConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "error":
		loggerConfig.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		loggerConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	loggerConfig.Encoding = c.Format
	loggerConfig.OutputPaths = []string{c.Output}
	loggerConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := loggerConfig.Build()
	if err != nil {
		panic(err)
	}

	Logger = logger.Sugar()

	return func() { Logger.Sync() }
}
