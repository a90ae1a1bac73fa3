package log

import "context"

type nopLogger struct{}

var _ Logger = nopLogger{}

// NewNop returns a Logger that discards everything.
// Components fall back to it when constructed without a logger.
func NewNop() Logger {
	return nopLogger{}
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return nopLogger{}
	}
	return l
}

func (nopLogger) Debug(context.Context, ...any)           {}
func (nopLogger) Debugf(context.Context, string, ...any)  {}
func (nopLogger) Info(context.Context, ...any)            {}
func (nopLogger) Infof(context.Context, string, ...any)   {}
func (nopLogger) Warn(context.Context, ...any)            {}
func (nopLogger) Warnf(context.Context, string, ...any)   {}
func (nopLogger) Error(context.Context, ...any)           {}
func (nopLogger) Errorf(context.Context, string, ...any)  {}
func (nopLogger) DPanic(context.Context, ...any)          {}
func (nopLogger) DPanicf(context.Context, string, ...any) {}
func (nopLogger) Panic(context.Context, ...any)           {}
func (nopLogger) Panicf(context.Context, string, ...any)  {}
func (nopLogger) Fatal(context.Context, ...any)           {}
func (nopLogger) Fatalf(context.Context, string, ...any)  {}
