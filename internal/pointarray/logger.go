package pointarray

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger sets the logger used for compression diagnostics. The package
// logs nothing until it is called. Passing nil restores the silent default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l.Named("pointarray"))
}

// Logger returns the current package logger.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
