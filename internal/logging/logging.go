package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const timeFormat = "2006-01-02 15:04:05"

// Options control verbosity of a constructed logger.
type Options struct {
	Verbose bool
	Quiet   bool
	Out     io.Writer // defaults to stderr
}

// New builds a dedicated logger instance so callers can pass it around
// explicitly instead of sharing package-level state.
func New(opt Options) *logrus.Logger {
	l := logrus.New()

	out := opt.Out
	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timeFormat,
	})

	switch {
	case opt.Quiet:
		l.SetLevel(logrus.ErrorLevel)
	case opt.Verbose:
		l.SetLevel(logrus.DebugLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}

	return l
}
