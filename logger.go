package vteparser

import (
	"fmt"
	"log/slog"
)

// Logger is the small leveled interface the parser logs through on
// its warn/debug error paths (§7: unknown sequences never surface as a
// Go error, only a log line; malformed SGR sub-parameters are reported
// as an Sgr Unknown event and are not logged).
// Grounded on phroun-pawscript's hand-rolled Logger type: a narrow
// interface an application wires to whatever backend it already uses,
// rather than a bare fmt.Printf or an unconditional third-party
// dependency.
type Logger interface {
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}

// slogLogger adapts the standard library's structured logger to
// Logger. This is the default backend; andyrewlee-amux's direct use
// of log/slog throughout its internal packages is the grounding for
// treating slog as this module's ambient logging choice rather than
// reaching for a third-party logging library that nothing else in
// this domain wires in directly.
type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Warnf(format string, args ...any) {
	s.l.Warn(fmt.Sprintf(format, args...))
}

func (s slogLogger) Debugf(format string, args ...any) {
	s.l.Debug(fmt.Sprintf(format, args...))
}

// noopLogger discards everything. NewParser never installs it on its
// own; it is used only when passed in through WithLogger.
type noopLogger struct{}

func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Debugf(string, ...any) {}

func defaultLogger() Logger {
	return slogLogger{l: slog.Default()}
}
