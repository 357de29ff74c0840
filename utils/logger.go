package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// NewLogger builds the application logger. A nil out means stderr; stdout
// belongs to the console dialogue.
func NewLogger(level, format string, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()

	if out == nil {
		out = os.Stderr
	}
	logger.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	switch format {
	case LogFormatText, "":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	case LogFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return logger, nil
}

// NewDiscardLogger returns a logger that drops everything. Used in tests.
func NewDiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
