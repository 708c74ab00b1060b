// Package log configures logrus for the CLI and Lambda entry points.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger with the given level and
// format ("text" or "json"). Unknown levels fall back to info.
func Setup(level string, format string) {
	Configure(logrus.StandardLogger(), nil, level, format)
}

// Configure sets output, format, and level on an existing logger.
func Configure(logger *logrus.Logger, out io.Writer, level string, format string) {
	if out != nil {
		logger.SetOutput(out)
	}
	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		})
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
}
