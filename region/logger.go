package region

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// loggerPtr stores the active logger. Accessed atomically so that SetLogger can
// be called while basins are being queried from other goroutines.
var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// A logger that discards everything, and whose level is low enough that
// callers guarding on IsLevelEnabled skip building fields entirely.
func newNopLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	l.Level = logrus.PanicLevel
	return l
}

// SetLogger configures the logger for the region package. By default nothing
// is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - Debug: basin construction, batch queries
//   - Warn: rejected constructor input
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently in use.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}
