// Package log provides the small logging surface shared by the emulator
// components.
package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is the interface used by the emulator components to report
// noteworthy events.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger backed by logrus, configured for plain
// single-line output.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewVerbose returns a Logger backed by logrus with debug output
// enabled.
func NewVerbose() Logger {
	l := New().(*logrus.Logger)
	l.SetLevel(logrus.DebugLevel)
	return l
}
