package util

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes to stderr by default, stdout is kept for results.
var Logger *zap.Logger

func init() {
	var err error
	Logger, err = newConsoleLogger(zapcore.WarnLevel)
	if err != nil {
		panic(err)
	}
}

func newConsoleLogger(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}

// InitLogger replaces Logger. An empty filename keeps logging to stderr,
// otherwise logs are written to the file.
func InitLogger(level, filename string) error {
	if filename == "" {
		l, err := zapcore.ParseLevel(level)
		if err != nil {
			return errors.Annotatef(err, "invalid log level %q", level)
		}
		lg, err := newConsoleLogger(l)
		if err != nil {
			return errors.Trace(err)
		}
		Logger = lg
		return nil
	}

	lg, props, err := log.InitLogger(&log.Config{
		Level:  level,
		Format: "text",
		File:   log.FileLogConfig{Filename: filename},
	})
	if err != nil {
		return errors.Annotatef(err, "init logger to file %s", filename)
	}
	log.ReplaceGlobals(lg, props)
	Logger = lg
	return nil
}
