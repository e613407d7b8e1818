// Package diag provides the structured diagnostics hook the setup kernels
// use in place of printing directly to stdout, following the shape of the
// teacher's mna.Debug collaborator (Init/IsDebug/Update/Render) reduced to
// the single operation the kernels need: a warning sink.
package diag

import "log"

// Logger receives diagnostic messages from kernels that would otherwise
// print to stdout (StandardInterpolator's zero-denominator cases, an
// unexpected splitter state). Warnf follows fmt.Printf formatting.
type Logger interface {
	Warnf(format string, args ...any)
}

// nopLogger discards every message, mirroring the teacher's debug{} struct
// whose embedded no-op methods make Debug safe to use before SetDebug(true).
type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}

// Nop is the default Logger: silent, safe for kernels called with logger
// unset.
var Nop Logger = nopLogger{}

// OrNop returns l if non-nil, else Nop — kernels call this once on entry so
// the rest of the function can assume a non-nil logger.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop
	}
	return l
}

// StdLogger routes Warnf through the standard library's log package, the
// way the teacher's mna/debug.Record.Error and mna/debug.Charts.Error both
// forward to log.Println for out-of-band diagnostics.
type StdLogger struct{ Prefix string }

func (s StdLogger) Warnf(format string, args ...any) {
	if s.Prefix != "" {
		log.Printf(s.Prefix+": "+format, args...)
		return
	}
	log.Printf(format, args...)
}
