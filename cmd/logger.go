package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger creates a logger writing to w at the given level.
// If verbose is true, the logger is set to DebugLevel regardless of level.
func newLogger(w io.Writer, level string, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	if verbose {
		log.SetLevel(logrus.DebugLevel)
		return log
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.SetLevel(logrus.WarnLevel)
		log.WithField("level", level).Warn("invalid LOG_LEVEL, defaulting to 'warn'")
		return log
	}
	log.SetLevel(parsed)

	return log
}
