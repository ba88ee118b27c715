package flycam

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Logger is the logging surface used by cameras and the demo frame loop.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger writes debug and info to one stream, warnings and errors to
// another, each line tagged "[prefix] LEVEL: ".
type DefaultLogger struct {
	debug atomic.Bool
	out   *log.Logger
	err   *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return newLogger(os.Stdout, os.Stderr, prefix, debug)
}

func newLogger(out, errOut io.Writer, prefix string, debug bool) *DefaultLogger {
	tag := ""
	if prefix != "" {
		tag = "[" + prefix + "] "
	}
	flags := log.LstdFlags | log.Lmicroseconds | log.Lmsgprefix
	l := &DefaultLogger{
		out: log.New(out, tag, flags),
		err: log.New(errOut, tag, flags),
	}
	l.debug.Store(debug)
	return l
}

func (l *DefaultLogger) DebugEnabled() bool    { return l.debug.Load() }
func (l *DefaultLogger) SetDebug(enabled bool) { l.debug.Store(enabled) }

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if l.DebugEnabled() {
		l.out.Print("DEBUG: " + fmt.Sprintf(format, args...))
	}
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.out.Print("INFO: " + fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.err.Print("WARN: " + fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.err.Print("ERROR: " + fmt.Sprintf(format, args...))
}

// Named scopes l to a component: every message is prefixed with "name: ".
// A nil l yields a no-op logger.
func Named(l Logger, name string) Logger {
	if l == nil {
		return NewNopLogger()
	}
	return namedLogger{Logger: l, name: name + ": "}
}

type namedLogger struct {
	Logger
	name string
}

func (n namedLogger) Debugf(format string, args ...any) { n.Logger.Debugf(n.name+format, args...) }
func (n namedLogger) Infof(format string, args ...any)  { n.Logger.Infof(n.name+format, args...) }
func (n namedLogger) Warnf(format string, args ...any)  { n.Logger.Warnf(n.name+format, args...) }
func (n namedLogger) Errorf(format string, args ...any) { n.Logger.Errorf(n.name+format, args...) }

type nopLogger struct{}

// NewNopLogger returns a Logger that discards everything. Cameras built
// without WithLogger use it.
func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) DebugEnabled() bool                { return false }
func (nopLogger) SetDebug(enabled bool)             {}
func (nopLogger) Debugf(format string, args ...any) {}
func (nopLogger) Infof(format string, args ...any)  {}
func (nopLogger) Warnf(format string, args ...any)  {}
func (nopLogger) Errorf(format string, args ...any) {}
