package logger

import (
	"os"

	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const timestampFormat = "2006-01-02 15:04:05"

var L = newLogger(logger.InfoLevel)

// New returns a stderr logger at the named level ("trace", "debug", "info", ...).
func New(level string) (*logger.Logger, error) {
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level '%s'", level)
	}
	return newLogger(lvl), nil
}

func newLogger(level logger.Level) *logger.Logger {
	return &logger.Logger{
		Out:   os.Stderr,
		Level: level,
		Hooks: make(logger.LevelHooks),
		Formatter: &prefixed.TextFormatter{
			TimestampFormat: timestampFormat,
			FullTimestamp:   true,
			ForceFormatting: true,
		},
	}
}
