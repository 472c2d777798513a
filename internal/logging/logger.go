// Package logging defines the logger used across sekfmt.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is a minimal logging interface. Library code takes a Logger and
// defaults to NopLogger; *logrus.Logger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// New returns a logrus logger writing text to stderr at the given level.
// An unknown level falls back to info and is reported once at warn.
func New(level string) *logrus.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		l.SetLevel(logrus.InfoLevel)
		l.Warnf("unknown log level %q, using info", level)
		return l
	}
	l.SetLevel(lvl)
	return l
}

var _ Logger = (*logrus.Logger)(nil)
