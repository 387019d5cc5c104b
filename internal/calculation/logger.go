package calculation

import (
	"log"
	"os"
)

// Logger is a minimal logging interface for the planning engine.
// Implementations should be fast; the default is a no-op.
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

// VerboseLogger writes level-prefixed lines to stderr. Debug output is
// gated so the CLI default stays quiet.
type VerboseLogger struct {
	Debug bool
	l     *log.Logger
}

// NewVerboseLogger returns a stderr logger; debug enables Debugf output.
func NewVerboseLogger(debug bool) *VerboseLogger {
	return &VerboseLogger{
		Debug: debug,
		l:     log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (v *VerboseLogger) Debugf(format string, args ...any) {
	if v.Debug {
		v.l.Printf("DEBUG "+format, args...)
	}
}

func (v *VerboseLogger) Infof(format string, args ...any) {
	v.l.Printf("INFO  "+format, args...)
}

func (v *VerboseLogger) Warnf(format string, args ...any) {
	v.l.Printf("WARN  "+format, args...)
}

func (v *VerboseLogger) Errorf(format string, args ...any) {
	v.l.Printf("ERROR "+format, args...)
}
